package config

const (
	// DefaultProjectPath is where .mtc.yaml and .env are looked up
	DefaultProjectPath = "."
	// DefaultDir is the default test case directory
	DefaultDir = "testcases"
	// DefaultLogLevel is the default slog level name
	DefaultLogLevel = "info"
	// DefaultLogFormat is the default slog handler format
	DefaultLogFormat = "text"

	// ConfigFileName is the optional project config file, without extension
	ConfigFileName = ".mtc"
	// EnvFileName is the optional dotenv file in the project path
	EnvFileName = ".env"
	// EnvPrefix prefixes every environment override, e.g. MTC_DIR
	EnvPrefix = "MTC"
)

// Config keys shared by the config file and the environment
const (
	keyDir       = "dir"
	keyLogLevel  = "log_level"
	keyLogFormat = "log_format"
)
