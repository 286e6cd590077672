// Package errors provides structured error types for the go-jni library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: class/member path, Go type, JNI
// descriptor and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindMethodNotFound).
//		Path("java/lang/Object", "hashCode").
//		Descriptor("()I").
//		Detail("no such method").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MethodNotFound("hashCode", "()I", false)
//	err := errors.NullMethodID(errors.PhaseCall, "(I)I")
//
// A pending Java exception always surfaces as Kind KindException; the
// throwable handle travels in Error.Value. Match with the phase-agnostic
// sentinels:
//
//	if errors.Is(err, errors.ErrException) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
