// Package errors extends the standard library errors package with slog
// attribute annotations and source location capture, so that errors
// wrapped deep in the call stack log with the context they were given at
// the wrap site.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError carries a message, optional slog attributes, and the
// source location of the call that created it.
type annotatedError struct {
	msg     string
	wrapped error
	attrs   []slog.Attr
	source  string
}

func (e *annotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return e.msg + ": " + e.wrapped.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.wrapped
}

// NewSentinel creates an error meant for package-level sentinel values
// that callers match with Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with a message, optional slog attributes, and the
// source location of the caller. Wrapping nil yields nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return &annotatedError{
		msg:     msg,
		wrapped: err,
		attrs:   attrs,
		source:  callerSource(3),
	}
}

// DecoratePanic converts a recovered panic value into an error whose
// source location points at the panic site rather than the recover site.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		source: panicSource(),
	}
}

// SlogError formats err into a single grouped slog attribute carrying the
// message, the source location of the outermost annotation, and every
// attribute attached along the wrap chain. Safe to call with nil.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		source      string
		annotations []slog.Attr
	)
	for e := err; e != nil; e = errors.Unwrap(e) {
		if annotated, ok := e.(*annotatedError); ok {
			if source == "" {
				source = annotated.source
			}
			annotations = append(annotations, annotated.attrs...)
		}
	}

	attrs := []any{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		args := make([]any, 0, len(annotations))
		for _, a := range annotations {
			args = append(args, a)
		}
		attrs = append(attrs, slog.Group("annotations", args...))
	}
	return slog.Group("error", attrs...)
}

// callerSource resolves the file:line of the frame skip levels above the
// runtime.Callers call.
func callerSource(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip, pcs[:]) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// panicSource walks the stack past runtime.gopanic to the frame that
// raised the panic. Returns "" when not called during panic recovery.
func panicSource() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	gopanicSeen := false
	for {
		frame, more := frames.Next()
		if gopanicSeen {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if frame.Function == "runtime.gopanic" {
			gopanicSeen = true
		}
		if !more {
			return ""
		}
	}
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
