package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the tracker database
	DefaultDatabasePath = "./shelfstreak.db"
)
