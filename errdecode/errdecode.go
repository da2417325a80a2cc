// Package errdecode turns an error into the placeholder variables used
// by watchdog messages: %type, !message, %function, %line and %file.
//
// The location is taken, in order, from an error that implements
// Locator, from the innermost github.com/pkg/errors stack trace in the
// chain, and otherwise left as "unknown".
package errdecode

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"

	"github.com/philipp01105/drushlog/core"
)

// Variable keys produced by Decode.
const (
	KeyType     = "%type"
	KeyMessage  = "!message"
	KeyFunction = "%function"
	KeyLine     = "%line"
	KeyFile     = "%file"
)

// DefaultTemplate is the watchdog message used for an error logged
// without an explicit message.
const DefaultTemplate = "%type: !message in %function (line %line of %file)."

const unknown = "unknown"

// Locator is implemented by errors that know where they were raised.
type Locator interface {
	Location() (function, file string, line int)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Decoder decodes errors for the watchdog logger.
type Decoder interface {
	Decode(err error) core.Context
}

// Default is the package decoder.
var Default Decoder = decoder{}

type decoder struct{}

func (decoder) Decode(err error) core.Context {
	return Decode(err)
}

// Decode returns the watchdog variables describing err. The type is the
// Go type of the root cause.
func Decode(err error) core.Context {
	if err == nil {
		return core.Context{}
	}

	function, file, line := locate(err)
	vars := core.Context{
		KeyType:     fmt.Sprintf("%T", errors.Cause(err)),
		KeyMessage:  err.Error(),
		KeyFunction: function,
		KeyFile:     file,
		KeyLine:     unknown,
	}
	if line > 0 {
		vars[KeyLine] = line
	}
	return vars
}

func locate(err error) (function, file string, line int) {
	var loc Locator
	if errors.As(err, &loc) {
		return loc.Location()
	}

	// The innermost stack trace is closest to where the error was raised.
	var st stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if s, ok := e.(stackTracer); ok {
			st = s
		}
	}
	if st != nil {
		if trace := st.StackTrace(); len(trace) > 0 {
			pc := uintptr(trace[0]) - 1
			if fn := runtime.FuncForPC(pc); fn != nil {
				file, line = fn.FileLine(pc)
				return core.ParseFunction(fn.Name()).Facility(), file, line
			}
		}
	}
	return unknown, unknown, 0
}
