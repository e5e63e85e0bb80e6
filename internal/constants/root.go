package constants

const (
	AppName           = "daybook"
	DefaultConfigPath = "~/.config/daybook/daybook.json"
	Version           = "v0.2.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// StorageVersion is stamped into every saved document.
	StorageVersion = 1

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daybook-"

	// LockfileName guards the data file against concurrent writers.
	LockfileName = "daybook.lock"

	// Profile defaults
	DefaultProfileName = "You"
	DefaultAccentColor = "#7E57C2"

	// FallbackColor is what an unparseable accent color renders as.
	FallbackColor = "#000000"
)
