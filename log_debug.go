//go:build debug

package proxsweep

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[proxsweep DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
