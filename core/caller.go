package core

import (
	"path"
	"runtime"
	"strings"
)

// maxFrames bounds the stack snapshot taken for facility resolution.
const maxFrames = 32

// Frame describes one function on the call stack.
type Frame struct {
	// Package is the full import path, e.g. "github.com/acme/app/worker".
	Package string
	// Type is the receiver type name without pointer marker, empty for
	// plain functions and closures.
	Type     string
	Function string
	File     string
	Line     int
}

// Facility formats the frame as "pkg.Type::Method" for methods and
// "pkg.Function" otherwise.
func (f Frame) Facility() string {
	name := path.Base(f.Package)
	if f.Type != "" {
		return name + "." + f.Type + "::" + f.Function
	}
	if name == "" || name == "." {
		return f.Function
	}
	return name + "." + f.Function
}

// StackSource supplies a snapshot of the current call stack. Index 0 of
// the result is the function that asked for the snapshot.
type StackSource interface {
	Frames(skip int) []Frame
}

// RuntimeStack reads frames from the Go runtime.
type RuntimeStack struct{}

// Frames implements StackSource.
func (RuntimeStack) Frames(skip int) []Frame {
	return Callers(skip + 1)
}

// Callers returns the stack above its caller. skip 0 starts at the
// function calling Callers.
func Callers(skip int) []Frame {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		if fr.Function != "" {
			f := ParseFunction(fr.Function)
			f.File = fr.File
			f.Line = fr.Line
			out = append(out, f)
		}
		if !more {
			break
		}
	}
	return out
}

// ParseFunction splits a runtime function name such as
// "github.com/acme/app/worker.(*Pool).Run" into package, type and
// function parts.
func ParseFunction(name string) Frame {
	lastSlash := strings.LastIndex(name, "/")
	dot := strings.Index(name[lastSlash+1:], ".")
	if dot < 0 {
		return Frame{Function: name}
	}
	dot += lastSlash + 1
	f := Frame{Package: name[:dot]}
	rest := name[dot+1:]

	if strings.HasPrefix(rest, "(") {
		if end := strings.Index(rest, ")"); end > 0 {
			f.Type = strings.TrimPrefix(rest[1:end], "*")
			f.Function = strings.TrimPrefix(rest[end+1:], ".")
			return f
		}
	}

	if i := strings.Index(rest, "."); i > 0 && !isClosure(rest[i+1:]) && !isPackageScope(rest) {
		f.Type = rest[:i]
		f.Function = rest[i+1:]
		return f
	}
	f.Function = rest
	return f
}

// isPackageScope reports whether s names code that runs outside any
// function or type: closures in package variables ("glob..func1") and
// init functions ("init.0").
func isPackageScope(s string) bool {
	if strings.HasPrefix(s, "glob.") {
		return true
	}
	if !strings.HasPrefix(s, "init.") || len(s) == len("init.") {
		return false
	}
	c := s[len("init.")]
	return c >= '0' && c <= '9'
}

// isClosure reports whether s names a compiler-generated closure such as
// "func1" or "func2.1".
func isClosure(s string) bool {
	if !strings.HasPrefix(s, "func") || len(s) == len("func") {
		return false
	}
	c := s[len("func")]
	return c >= '0' && c <= '9'
}

// Facade matches frames that belong to the logging layer itself. A frame
// matches when its package equals one of the registered paths or lives
// below one of them.
type Facade struct {
	packages []string
}

// NewFacade creates a matcher for the given package paths.
func NewFacade(packages ...string) Facade {
	return Facade{packages: append([]string(nil), packages...)}
}

// With returns a copy of the matcher extended with more packages, for
// hosts that wrap the loggers in their own helpers.
func (m Facade) With(packages ...string) Facade {
	all := make([]string, 0, len(m.packages)+len(packages))
	all = append(all, m.packages...)
	all = append(all, packages...)
	return Facade{packages: all}
}

// Matches reports whether f is part of the logging facade.
func (m Facade) Matches(f Frame) bool {
	for _, p := range m.packages {
		if f.Package == p || strings.HasPrefix(f.Package, p+"/") {
			return true
		}
	}
	return false
}

// UnknownFacility is returned when the stack is empty.
const UnknownFacility = "unknown"

// ResolveFacility returns the facility of the first frame that is not
// part of the facade. When every frame matches, the frame at index 1
// (directly above the log call) is used instead.
func ResolveFacility(frames []Frame, isFacade func(Frame) bool) string {
	for _, f := range frames {
		if isFacade == nil || !isFacade(f) {
			return f.Facility()
		}
	}
	switch {
	case len(frames) > 1:
		return frames[1].Facility()
	case len(frames) == 1:
		return frames[0].Facility()
	default:
		return UnknownFacility
	}
}
