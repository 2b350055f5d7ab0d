package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemLoggersLock sync.Mutex
	subsystemLoggers     = make(map[string]*Logger)
)

// RegisterSubSystem returns the logger of the given subsystem, creating it on first use.
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	logger, exists := subsystemLoggers[subsystem]
	if !exists {
		logger = BackendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

// SupportedSubsystems returns a sorted list of the registered subsystems.
func SupportedSubsystems() []string {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsystem := range subsystemLoggers {
		subsystems = append(subsystems, subsystem)
	}
	sort.Strings(subsystems)
	return subsystems
}

// InitLogStdout attaches stdout to the backend log and starts it.
func InitLogStdout(logLevel Level) {
	err := BackendLog.AddLogWriter(os.Stdout, logLevel)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error adding stdout to the logger for level %s: %s\n", logLevel, err)
		os.Exit(1)
	}
	runBackendLog()
}

// InitLogStderr attaches stderr to the backend log and starts it. Commands whose output
// goes to stdout log here.
func InitLogStderr(logLevel Level) {
	err := BackendLog.AddLogWriter(os.Stderr, logLevel)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error adding stderr to the logger for level %s: %s\n", logLevel, err)
		os.Exit(1)
	}
	runBackendLog()
}

// InitLog attaches a rotated log file to the backend log and starts it.
func InitLog(logFile string, logLevel Level) {
	err := BackendLog.AddLogFile(logFile, logLevel)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s\n", logFile, logLevel, err)
		os.Exit(1)
	}
	runBackendLog()
}

func runBackendLog() {
	err := BackendLog.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error starting the logger: %s\n", err)
		os.Exit(1)
	}
}

// SetLogLevels sets the logging level of every registered subsystem.
func SetLogLevels(logLevel Level) {
	subsystemLoggersLock.Lock()
	defer subsystemLoggersLock.Unlock()

	for _, logger := range subsystemLoggers {
		logger.SetLevel(logLevel)
	}
}

// ParseAndSetLogLevels parses a level specification and applies it. The specification is
// either a single level applied to all subsystems, or a comma separated list of
// subsystem=level pairs.
func ParseAndSetLogLevels(levelSpec string) error {
	if !strings.Contains(levelSpec, ",") && !strings.Contains(levelSpec, "=") {
		level, ok := LevelFromString(levelSpec)
		if !ok {
			return errors.Errorf("the specified log level [%s] is invalid", levelSpec)
		}
		SetLogLevels(level)
		return nil
	}

	for _, pair := range strings.Split(levelSpec, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return errors.Errorf("the specified log level contains an invalid subsystem/level pair [%s]", pair)
		}
		subsystem, levelString := fields[0], fields[1]

		subsystemLoggersLock.Lock()
		logger, exists := subsystemLoggers[subsystem]
		subsystemLoggersLock.Unlock()
		if !exists {
			return errors.Errorf("the specified subsystem [%s] is invalid -- supported subsystems are %s",
				subsystem, strings.Join(SupportedSubsystems(), ", "))
		}

		level, ok := LevelFromString(levelString)
		if !ok {
			return errors.Errorf("the specified log level [%s] is invalid", levelString)
		}
		logger.SetLevel(level)
	}
	return nil
}
