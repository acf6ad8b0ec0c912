package system

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

func logInfo(l Logger, format string, args ...interface{}) {
	if l != nil {
		l.Infof("tty", format, args...)
	}
}

func logErr(l Logger, format string, args ...interface{}) {
	if l != nil {
		l.Errorf("tty", format, args...)
	}
}
