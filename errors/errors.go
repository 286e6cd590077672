package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve    Phase = "resolve"    // method/class lookup
	PhaseCall       Phase = "call"       // foreign call primitives
	PhaseReference  Phase = "reference"  // local/global/weak reference management
	PhaseMonitor    Phase = "monitor"    // intrinsic lock operations
	PhaseDescriptor Phase = "descriptor" // descriptor parsing
	PhaseLoad       Phase = "load"       // class file loading
	PhaseConfig     Phase = "config"     // configuration decoding
	PhaseGenerate   Phase = "generate"   // code generation
	PhaseAttach     Phase = "attach"     // VM creation and thread attachment
)

// Kind categorizes the error
type Kind string

const (
	KindException         Kind = "exception"
	KindNullMethodID      Kind = "null_method_id"
	KindMethodNotFound    Kind = "method_not_found"
	KindClassNotFound     Kind = "class_not_found"
	KindNullReference     Kind = "null_reference"
	KindCollected         Kind = "collected"
	KindAllocation        Kind = "allocation"
	KindInvalidDescriptor Kind = "invalid_descriptor"
	KindMonitor           Kind = "monitor"
	KindInvalidInput      Kind = "invalid_input"
	KindUnsupported       Kind = "unsupported"
	KindNotInitialized    Kind = "not_initialized"
	KindMismatch          Kind = "mismatch"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	GoType     string
	Descriptor string
	Detail     string
	Path       []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.Descriptor != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Descriptor != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", descriptor ")
			b.WriteString(e.Descriptor)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("descriptor ")
			b.WriteString(e.Descriptor)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Descriptor != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the class/member path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Descriptor sets the JNI type descriptor
func (b *Builder) Descriptor(d string) *Builder {
	b.err.Descriptor = d
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Sentinels for errors.Is matching regardless of phase.
var (
	ErrException      = &Error{Kind: KindException}
	ErrNullMethodID   = &Error{Kind: KindNullMethodID}
	ErrMethodNotFound = &Error{Kind: KindMethodNotFound}
	ErrCollected      = &Error{Kind: KindCollected}
)

// Convenience constructors for common error patterns

// Exception creates a pending-exception error. The throwable handle, if any,
// is stored in Value.
func Exception(phase Phase, throwable any, path ...string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindException,
		Path:   path,
		Value:  throwable,
		Detail: "java exception pending",
	}
}

// NullMethodID creates the error for calling through an unresolved method handle
func NullMethodID(phase Phase, descriptor string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindNullMethodID,
		Descriptor: descriptor,
		Detail:     "method id is null",
	}
}

// MethodNotFound creates a method lookup failure
func MethodNotFound(name, descriptor string, static bool) *Error {
	what := "method"
	if static {
		what = "static method"
	}
	return &Error{
		Phase:      PhaseResolve,
		Kind:       KindMethodNotFound,
		Path:       []string{name},
		Descriptor: descriptor,
		Detail:     what + " not found",
	}
}

// ClassNotFound creates a class lookup failure
func ClassNotFound(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindClassNotFound,
		Path:   []string{name},
		Detail: fmt.Sprintf("class %q not found", name),
		Cause:  cause,
	}
}

// NullReference creates an error for operations on a null or released handle
func NullReference(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullReference,
		GoType: goType,
		Detail: "null reference",
	}
}

// Collected creates an error for a weak reference whose referent is gone
func Collected(goType string) *Error {
	return &Error{
		Phase:  PhaseReference,
		Kind:   KindCollected,
		GoType: goType,
		Detail: "referent has been collected",
	}
}

// AllocationFailed creates a reference allocation failure
func AllocationFailed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %s", what),
	}
}

// InvalidDescriptor creates a descriptor parse error
func InvalidDescriptor(descriptor string, offset int, detail string) *Error {
	return &Error{
		Phase:      PhaseDescriptor,
		Kind:       KindInvalidDescriptor,
		Descriptor: descriptor,
		Detail:     fmt.Sprintf("%s at offset %d", detail, offset),
		Value:      offset,
	}
}

// Monitor creates an intrinsic lock failure
func Monitor(op string, status int32) *Error {
	return &Error{
		Phase:  PhaseMonitor,
		Kind:   KindMonitor,
		Detail: fmt.Sprintf("%s returned %d", op, status),
		Value:  status,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotInitialized creates a not-initialized error
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Mismatch creates a declared-vs-actual signature mismatch
func Mismatch(path []string, want, got string) *Error {
	return &Error{
		Phase:      PhaseLoad,
		Kind:       KindMismatch,
		Path:       path,
		Descriptor: want,
		Detail:     fmt.Sprintf("class declares %s", got),
		Value:      got,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a class file loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}

// Config creates a configuration error
func Config(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}

// Attach creates a VM creation or thread attachment error
func Attach(op string, status int32) *Error {
	return &Error{
		Phase:  PhaseAttach,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s returned %d", op, status),
		Value:  status,
	}
}

// MissingMethod names a single unresolved class member
type MissingMethod struct {
	Class      string
	Name       string
	Descriptor string
}

// MissingMethodsError is returned when a set of declared bindings cannot be
// resolved against a class.
type MissingMethodsError struct {
	Methods []MissingMethod
}

// NewMissingMethodsError creates an error from "class#name:descriptor" keys
func NewMissingMethodsError(keys []string) *MissingMethodsError {
	result := &MissingMethodsError{
		Methods: make([]MissingMethod, 0, len(keys)),
	}
	for _, key := range keys {
		result.Methods = append(result.Methods, parseMethodKey(key))
	}
	return result
}

func parseMethodKey(key string) MissingMethod {
	cls, member, found := strings.Cut(key, "#")
	if !found {
		return MissingMethod{Name: key}
	}
	name, desc, _ := strings.Cut(member, ":")
	return MissingMethod{Class: cls, Name: name, Descriptor: desc}
}

func (e *MissingMethodsError) Error() string {
	if len(e.Methods) == 0 {
		return "[resolve] method_not_found: no methods specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("missing %d method(s):\n", len(e.Methods)))

	byClass := make(map[string][]string)
	var order []string
	for _, m := range e.Methods {
		if _, exists := byClass[m.Class]; !exists {
			order = append(order, m.Class)
		}
		byClass[m.Class] = append(byClass[m.Class], m.Name+m.Descriptor)
	}

	for _, cls := range order {
		b.WriteString("\n  ")
		b.WriteString(strings.ReplaceAll(cls, "/", "."))
		b.WriteString(":\n")
		for _, m := range byClass[cls] {
			b.WriteString("    - ")
			b.WriteString(m)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *MissingMethodsError) Is(target error) bool {
	_, ok := target.(*MissingMethodsError)
	return ok
}
