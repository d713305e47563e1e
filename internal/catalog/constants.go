package catalog

// Defaults applied to blank custom card fields
const (
	DefaultCardName   = "Unknown"
	DefaultAttackName = "Strike"
)

// CatalogFileVersion is the schema version written in card YAML files
const CatalogFileVersion = "1"
