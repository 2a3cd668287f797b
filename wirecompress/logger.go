package wirecompress

import "log"

// Logger is the diagnostic sink Wrap uses for the one warning spec.md
// §4.5 calls for ("If it fails, warn and return not compressed"). It is a
// narrowed copy of the teacher's placeholder Logger interface
// (logger.go's stdLogger), kept down to the single method this package
// needs.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// StdLogger backs Logger with the standard library logger, exactly as the
// teacher's stdLogger did before an in-house logger was wired in.
type StdLogger struct{}

func (StdLogger) Warnf(format string, args ...interface{}) { log.Printf(format, args...) }
