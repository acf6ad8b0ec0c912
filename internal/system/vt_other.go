//go:build !linux

package system

// EnterGraphicsMode is a no-op outside Linux.
func EnterGraphicsMode(l Logger) (restore func()) {
	logInfo(l, "no virtual terminal control on this platform")
	return func() {}
}
