package constants

// ToggleMode selects which completion flag a habit toggle operates on
type ToggleMode string

const (
	AppName           = "momentum"
	DefaultConfigDir  = "~/.config/momentum"
	DefaultConfigPath = "~/.config/momentum/momentum.db"
	DefaultConfigFile = "~/.config/momentum/config.json"
	MemoryConfig      = ":memory:"
	KeyringConfig     = "keyring"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Keyring accounts
	KeyringAIUser = "ai-api-key"
	KeyringDBUser = "database-connection"

	// Storage keys, one JSON document per collection
	KeyHabits       = "habits"
	KeyLogs         = "logs"
	KeyMicroWins    = "microwins"
	KeyMicroWinLogs = "microwin_logs"
	KeyPlans        = "plans"
	KeyJournal      = "journal"

	// Day plans hold at most this many priorities
	MaxDailyTasks = 5

	// Analytics windows in days
	SeriesWindowDays      = 30
	HeatmapWindowDays     = 90
	ConsistencyWindowDays = 30
	BalanceWindowDays     = 30
	DistributionWindow    = 30
	LastWeekOffsetDays    = 7
	DigestWindowDays      = 7

	// Sample data seeded on first run
	SeedHistoryDays = 6

	// Heatmap scores
	HeatScoreFull    = 3
	HeatScorePartial = 1
	HeatScoreNone    = 0

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "momentum-backup-"
	BackupFileSuffix = ".json"

	// Distribution categories
	CategoryFull    = "fully-done"
	CategoryPartial = "done-enough"
	CategoryMissed  = "missed"

	ToggleFull    ToggleMode = "full"
	TogglePartial ToggleMode = "partial"

	// AI client defaults
	DefaultAIEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultAIModel    = "gemini-2.0-flash"
)

// StorageKeys lists every persisted collection in commit order
var StorageKeys = []string{
	KeyHabits,
	KeyLogs,
	KeyMicroWins,
	KeyMicroWinLogs,
	KeyPlans,
	KeyJournal,
}

