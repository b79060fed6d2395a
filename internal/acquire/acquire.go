// Package acquire provides sample sources for the qrsdet CLI: a text file
// reader for offline runs and a live serial reader for on-device capture.
package acquire

// Source yields one ECG sample at a time. Next returns ok == false once the
// source is exhausted; it returns a non-nil error only on an unrecoverable
// read failure.
type Source interface {
	Next() (sample int16, ok bool, err error)
	Close() error
}
