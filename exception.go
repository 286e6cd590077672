package jni

import (
	stderrors "errors"

	"github.com/wippyai/go-jni/errors"
)

// CheckException turns a pending Java exception into an error.
//
// When an exception is pending it is fetched as a new local reference,
// cleared, and returned inside an *errors.Error of kind KindException. The
// caller owns that local reference; ReleaseException deletes it.
func CheckException(env Env) error {
	return checkException(env, errors.PhaseCall)
}

func checkException(env Env, phase errors.Phase, path ...string) error {
	if !env.ExceptionCheck() {
		return nil
	}
	throwable := env.ExceptionOccurred()
	env.ExceptionClear()
	return errors.Exception(phase, throwable, path...)
}

// ThrowableOf returns the throwable local reference carried by an exception
// error anywhere in err's chain.
func ThrowableOf(err error) (Object, bool) {
	var e *errors.Error
	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		if !stderrors.As(cur, &e) {
			return 0, false
		}
		if e.Kind == errors.KindException {
			obj, ok := e.Value.(Object)
			return obj, ok && obj != 0
		}
		cur = e
	}
	return 0, false
}

// ReleaseException deletes the throwable local reference carried by err, if
// any. The error value stays usable for its message.
func ReleaseException(env Env, err error) {
	var e *errors.Error
	for cur := err; cur != nil; cur = stderrors.Unwrap(cur) {
		if !stderrors.As(cur, &e) {
			return
		}
		if e.Kind == errors.KindException {
			if obj, ok := e.Value.(Object); ok && obj != 0 {
				env.DeleteLocalRef(obj)
				e.Value = Null
			}
			return
		}
		cur = e
	}
}
