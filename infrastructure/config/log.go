package config

import (
	"os"
	"path/filepath"

	"github.com/nrgnet/nrgd/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel = "info"
)

// LogFlags holds the logging configuration shared by the command line tools.
type LogFlags struct {
	LogDir   string `long:"logdir" description:"Directory to log output"`
	LogLevel string `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
}

// ApplyLogFlags starts the log backend, writing appName's log files into
// LogDir when one is set and to stderr otherwise, and applies the requested
// levels.
func (logFlags *LogFlags) ApplyLogFlags(appName string) error {
	if logFlags.LogLevel == "" {
		logFlags.LogLevel = defaultLogLevel
	}

	if logFlags.LogDir != "" {
		logFile := filepath.Join(logFlags.LogDir, appName+".log")
		errLogFile := filepath.Join(logFlags.LogDir, appName+"_err.log")
		err := logger.InitLog(logFile, errLogFile)
		if err != nil {
			return errors.Wrapf(err, "failed to initialize logging into %s", logFlags.LogDir)
		}
	} else {
		err := logger.BackendLog.AddLogWriter(os.Stderr, logger.LevelTrace)
		if err != nil {
			return err
		}
		err = logger.BackendLog.Run()
		if err != nil {
			return err
		}
	}

	return logger.ParseAndSetLogLevels(logFlags.LogLevel)
}
