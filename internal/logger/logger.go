// Package logger provides the detector CLI's single log sink.
package logger

import "log"

// Quiet disables Info output when true; Error always prints.
var Quiet bool

// Info prints a message prefixed "qrsdet: " unless Quiet is set.
func Info(format string, args ...interface{}) {
	if Quiet {
		return
	}
	log.Printf("qrsdet: "+format, args...)
}

// Error prints a message prefixed "qrsdet: " regardless of Quiet.
func Error(format string, args ...interface{}) {
	log.Printf("qrsdet: "+format, args...)
}
