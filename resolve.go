package jni

import (
	"go.uber.org/zap"

	"github.com/wippyai/go-jni/errors"
)

// GetMethodID resolves an instance method by name and descriptor on cls or
// one of its supertypes.
//
// The pending-exception state is checked right after the lookup; a
// NoSuchMethodError raised by the VM is cleared and surfaces as an exception
// error in the resolve phase.
func GetMethodID(env Env, cls Class, name, sig string) (MethodID, error) {
	id := env.GetMethodID(cls, name, sig)
	return checkResolved(env, id, name, sig, false)
}

// GetStaticMethodID is GetMethodID for static methods.
func GetStaticMethodID(env Env, cls Class, name, sig string) (MethodID, error) {
	id := env.GetStaticMethodID(cls, name, sig)
	return checkResolved(env, id, name, sig, true)
}

func checkResolved(env Env, id MethodID, name, sig string, static bool) (MethodID, error) {
	if err := checkException(env, errors.PhaseResolve, name+sig); err != nil {
		Logger().Debug("method lookup raised",
			zap.String("name", name),
			zap.String("sig", sig),
			zap.Bool("static", static))
		return 0, err
	}
	if id == 0 {
		return 0, errors.MethodNotFound(name, sig, static)
	}
	return id, nil
}

// FindClass looks up a class by binary name ("java/lang/String") and returns
// a new local reference to it.
func FindClass(env Env, name string) (Class, error) {
	cls := env.FindClass(name)
	if err := checkException(env, errors.PhaseResolve, name); err != nil {
		return 0, errors.ClassNotFound(name, err)
	}
	if cls == 0 {
		return 0, errors.ClassNotFound(name, nil)
	}
	return cls, nil
}
