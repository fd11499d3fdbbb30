// Package merger ingests supplier price-list workbooks, detects their
// cost columns, and consolidates them into a single master workbook with
// markup columns appended per supplier sheet.
package merger

import (
	"io"
	"log"
)

// MaxFileSize is the default acceptance limit for one input file.
const MaxFileSize = 50 * 1024 * 1024

// Options configures a merge run.
type Options struct {
	// MaxFileSize caps accepted input file sizes in bytes.
	// Zero means MaxFileSize.
	MaxFileSize int64
	// Logger receives per-file warnings and progress notes.
	// Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the default run configuration.
func DefaultOptions() Options {
	return Options{MaxFileSize: MaxFileSize}
}

func (o Options) sizeLimit() int64 {
	if o.MaxFileSize > 0 {
		return o.MaxFileSize
	}
	return MaxFileSize
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}
