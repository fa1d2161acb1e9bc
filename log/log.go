package log

import (
	"fmt"
	"io"
	"strings"
	"time"
)

func splitLevel(level string) Levels {
	var l Levels
	enabled := strings.Split(level, "|")
	for x := range enabled {
		switch enabled[x] {
		case "DEBUG":
			l.Debug = true
		case "INFO":
			l.Info = true
		case "WARN":
			l.Warn = true
		case "ERROR":
			l.Error = true
		}
	}
	return l
}

// SetLevel enables the levels contained in the pipe delimited string,
// eg "INFO|WARN|ERROR"
func SetLevel(level string) {
	global.m.Lock()
	global.levels = splitLevel(level)
	global.m.Unlock()
}

// SetOutput redirects all logging output, mainly used by tests
func SetOutput(w io.Writer) {
	global.m.Lock()
	global.output = w
	global.m.Unlock()
}

func (l *Logger) newLogEvent(data, header string) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.output == nil {
		return
	}
	buf := make([]byte, 0, len(header)+len(data)+len(l.timestamp)+len(l.spacer)*2+1)
	buf = append(buf, header...)
	buf = append(buf, l.spacer...)
	if l.timestamp != "" {
		buf = time.Now().AppendFormat(buf, l.timestamp)
	}
	buf = append(buf, l.spacer...)
	buf = append(buf, data...)
	if data == "" || data[len(data)-1] != '\n' {
		buf = append(buf, '\n')
	}
	l.output.Write(buf) //nolint:errcheck // logging is best effort
}

// Info logs data at the info level
func Info(data string) {
	if !global.levels.Info {
		return
	}
	global.newLogEvent(data, global.infoHeader)
}

// Infof logs formatted data at the info level
func Infof(data string, v ...interface{}) {
	if !global.levels.Info {
		return
	}
	Info(fmt.Sprintf(data, v...))
}

// Debug logs data at the debug level
func Debug(data string) {
	if !global.levels.Debug {
		return
	}
	global.newLogEvent(data, global.debugHeader)
}

// Debugf logs formatted data at the debug level
func Debugf(data string, v ...interface{}) {
	if !global.levels.Debug {
		return
	}
	Debug(fmt.Sprintf(data, v...))
}

// Warn logs data at the warn level
func Warn(data string) {
	if !global.levels.Warn {
		return
	}
	global.newLogEvent(data, global.warnHeader)
}

// Warnf logs formatted data at the warn level
func Warnf(data string, v ...interface{}) {
	if !global.levels.Warn {
		return
	}
	Warn(fmt.Sprintf(data, v...))
}

// Error logs data at the error level
func Error(data ...interface{}) {
	if !global.levels.Error {
		return
	}
	global.newLogEvent(fmt.Sprint(data...), global.errorHeader)
}

// Errorf logs formatted data at the error level
func Errorf(data string, v ...interface{}) {
	if !global.levels.Error {
		return
	}
	Error(fmt.Sprintf(data, v...))
}
