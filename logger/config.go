package logger

import (
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

const (
	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// Config holds the settings of the root logger.
type Config struct {
	// Level is the minimum enabled level, i.e. "debug" or "warn".
	Level string `json:"level"`
	// DisableCaller omits the file:line annotation.
	DisableCaller bool `json:"disableCaller"`
	// DisableStacktrace omits stacktraces of error logs.
	DisableStacktrace bool `json:"disableStacktrace"`
	// Encoding is either "console" or "json".
	Encoding string `json:"encoding"`
	// OutputPaths are files or "stdout"/"stderr". Logs go to stderr by default to keep stdout free for results.
	OutputPaths []string `json:"outputPaths"`
}

// DefaultCfg is the Config that is used for every setting that is not configured.
var DefaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stderr"},
}

// RegisterFlags adds the logger settings to the given FlagSet, using DefaultCfg as defaults.
func RegisterFlags(flagSet *pflag.FlagSet) {
	flagSet.String(ConfigurationKeyLevel, DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(ConfigurationKeyEncoding, DefaultCfg.Encoding, "the log encoding (console or json)")
	flagSet.StringSlice(ConfigurationKeyOutputPaths, DefaultCfg.OutputPaths, "where log output is written to")
	flagSet.Bool(ConfigurationKeyDisableCaller, DefaultCfg.DisableCaller, "do not annotate logs with the caller")
	flagSet.Bool(ConfigurationKeyDisableStacktrace, DefaultCfg.DisableStacktrace, "do not capture stacktraces")
}

// withDefaults fills the empty settings with the ones of DefaultCfg.
func (c Config) withDefaults() Config {
	if c.Level == "" {
		c.Level = DefaultCfg.Level
	}
	if c.Encoding == "" {
		c.Encoding = DefaultCfg.Encoding
	}
	if len(c.OutputPaths) == 0 {
		c.OutputPaths = DefaultCfg.OutputPaths
	}

	return c
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}
