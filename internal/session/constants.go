package session

import "time"

// Defaults applied when Config leaves a field zero
const (
	DefaultCacheSize = 256
	DefaultTTL       = time.Hour
	DefaultSeed      = "PUGLAR"
)

// Log messages
const (
	LogMsgTournamentCreated   = "Tournament created"
	LogMsgTournamentRestarted = "Tournament restarted"
	LogMsgRoundPlayed         = "Tournament round played"
	LogMsgTournamentSettled   = "Tournament settled"
	LogMsgCardAdded           = "Custom card added"
	LogMsgSessionDeleted      = "Tournament session deleted"
	LogMsgSessionEvicted      = "Tournament session evicted while in use"
	LogMsgPublishFailed       = "Failed to publish tournament event"
)
