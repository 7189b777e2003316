package gltfwriter

import "fmt"

// ErrorCode classifies a WriteError per spec §7.
type ErrorCode int

const (
	// FatalInvalidGraph covers accessor role overlap, a buffer
	// referenced by a non-Accessor parent, or an unsupported
	// component type encountered while interleaving.
	FatalInvalidGraph ErrorCode = iota
	// FatalUnsupported is reserved for an emitter invoked on a
	// property variant the writer cannot serialize.
	FatalUnsupported
)

// WriteError is the error type Write returns for any FatalInvalidGraph
// or FatalUnsupported condition. A non-nil error from Write always
// carries one of these as its root cause.
type WriteError struct {
	Code ErrorCode
	Msg  string
}

func (e *WriteError) Error() string {
	return e.Msg
}

func fatalInvalidGraph(format string, args ...interface{}) *WriteError {
	return &WriteError{Code: FatalInvalidGraph, Msg: fmt.Sprintf(format, args...)}
}

func fatalUnsupported(format string, args ...interface{}) *WriteError {
	return &WriteError{Code: FatalUnsupported, Msg: fmt.Sprintf(format, args...)}
}
