package logger

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemLoggers      = make(map[string]*Logger)
	subsystemLoggersMutex sync.Mutex
)

// RegisterSubSystem returns the logger of the given subsystem, creating it on
// first use. Every package registers its own tag in its log.go.
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	logger, exists := subsystemLoggers[subsystem]
	if !exists {
		logger = BackendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

// InitLog attaches log file and error log file to the backend log and starts
// it. Every subsystem is set to LevelInfo.
func InitLog(logFile, errLogFile string) error {
	err := BackendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		return err
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		return err
	}
	err = BackendLog.AddLogWriter(os.Stdout, LevelInfo)
	if err != nil {
		return err
	}
	err = BackendLog.Run()
	if err != nil {
		return err
	}
	SetLogLevels(LevelInfo)
	return nil
}

// SetLogLevel sets the logging level for the provided subsystem. Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel Level) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	logger.SetLevel(logLevel)
}

// SetLogLevels sets the log level for all subsystem loggers.
func SetLogLevels(logLevel Level) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	for _, logger := range subsystemLoggers {
		logger.SetLevel(logLevel)
	}
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// ParseAndSetLogLevels parses a level spec of the form "level" or
// "SUBSYS=level,SUBSYS=level" and applies it.
func ParseAndSetLogLevels(levelSpec string) error {
	if !strings.Contains(levelSpec, ",") && !strings.Contains(levelSpec, "=") {
		level, ok := LevelFromString(levelSpec)
		if !ok {
			return errors.Errorf("the specified debug level [%s] is invalid", levelSpec)
		}
		SetLogLevels(level)
		return nil
	}

	for _, logLevelPair := range strings.Split(levelSpec, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%s]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevelStr := fields[0], fields[1]
		if !isSupportedSubsystem(subsysID) {
			return errors.Errorf("the specified subsystem [%s] is invalid -- "+
				"supported subsystems %s", subsysID, strings.Join(SupportedSubsystems(), ", "))
		}

		level, ok := LevelFromString(logLevelStr)
		if !ok {
			return errors.Errorf("the specified debug level [%s] is invalid", logLevelStr)
		}
		SetLogLevel(subsysID, level)
	}
	return nil
}

func isSupportedSubsystem(subsystemID string) bool {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	_, exists := subsystemLoggers[subsystemID]
	return exists
}
