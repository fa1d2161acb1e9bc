package log

import (
	"io"
	"os"
	"sync"
)

const timestampFormat = "02/01/2006 15:04:05"

// Levels flags each logging level on or off
type Levels struct {
	Debug, Info, Warn, Error bool
}

// Logger writes level-gated, header-prefixed lines to a single output
type Logger struct {
	m           sync.Mutex
	output      io.Writer
	levels      Levels
	spacer      string
	timestamp   string
	infoHeader  string
	warnHeader  string
	debugHeader string
	errorHeader string
}

var global = &Logger{
	output:      os.Stdout,
	levels:      Levels{Info: true, Warn: true, Error: true},
	spacer:      " | ",
	timestamp:   timestampFormat,
	infoHeader:  "[INFO]",
	warnHeader:  "[WARN]",
	debugHeader: "[DEBUG]",
	errorHeader: "[ERROR]",
}
