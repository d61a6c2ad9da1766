package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	// Loggers for the different levels. Nil until SetupLogger runs;
	// the level functions fall back to stderr in that case.
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
)

// SetupLogger routes leveled logs to stdout and a date-stamped file under
// logs/.
func SetupLogger() error {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("create log directory: %v", err)
	}

	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %v", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	InfoLogger = log.New(multiWriter, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(multiWriter, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// Info logs an info level message
func Info(format string, v ...interface{}) {
	ensure(&InfoLogger, "INFO: ").Printf(format, v...)
}

// Warning logs a warning level message
func Warning(format string, v ...interface{}) {
	ensure(&WarningLogger, "WARNING: ").Printf(format, v...)
}

// Error logs an error level message
func Error(format string, v ...interface{}) {
	ensure(&ErrorLogger, "ERROR: ").Printf(format, v...)
}

// ensure lets library consumers log without calling SetupLogger first.
func ensure(l **log.Logger, prefix string) *log.Logger {
	if *l == nil {
		*l = log.New(os.Stderr, prefix, log.Ldate|log.Ltime|log.Lshortfile)
	}
	return *l
}
