package simulation

// SeedFormat builds batch seeds from a prefix and a 1-based run number
const SeedFormat = "%s-%d"
