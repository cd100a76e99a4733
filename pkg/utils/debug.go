package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

var debugLogger *log.Logger
var debugFile *os.File

// DebugLogPath returns the location of the debug log file.
func DebugLogPath() string {
	return filepath.Join(os.TempDir(), "golist_debug.log")
}

func InitDebugLogger() {
	var err error
	debugFile, err = os.OpenFile(DebugLogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log file: %v\n", err)
		return
	}

	debugLogger = log.New(debugFile, "", log.Ldate|log.Ltime|log.Lshortfile)
	debugLogger.Println("=== Debug Session Start ===", time.Now())
}

func CloseDebugLogger() {
	if debugFile != nil {
		debugLogger.Println("=== Debug Session End ===", time.Now())
		debugFile.Close()
		debugFile = nil
		debugLogger = nil
	}
}

// DebugLog writes a formatted line to the debug log. It does nothing until
// InitDebugLogger has been called.
func DebugLog(format string, args ...interface{}) {
	if debugLogger != nil {
		debugLogger.Output(2, fmt.Sprintf(format, args...))
	}
}
