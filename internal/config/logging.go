package config

import (
	"github.com/rshade/artable/internal/logging"
)

// ToLoggingConfig converts the logging section to a logging.Config.
//
// When toFile is true and a file is configured, output goes to that file;
// otherwise it goes to stderr. The interactive browser logs to file because it
// owns the terminal; one-shot commands log to stderr.
func (lc LoggingConfig) ToLoggingConfig(toFile bool) logging.Config {
	output := logging.OutputStderr
	if toFile && lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the Logging section of the global configuration.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
