//go:build !debug

package proxsweep

func logDebugf(format string, v ...interface{}) {}
