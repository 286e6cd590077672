package lang

import (
	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
	"github.com/wippyai/go-jni/ref"
)

// NewString creates a java.lang.String from s.
func NewString(env jni.Env, s string) (*ref.Local[jni.StringRef], error) {
	obj := env.NewStringUTF(s)
	if err := jni.CheckException(env); err != nil {
		return nil, err
	}
	if obj == jni.Null {
		return nil, errors.AllocationFailed(errors.PhaseCall, "java.lang.String")
	}
	return ref.NewLocal[jni.StringRef](env, obj), nil
}

// GoString reads a java.lang.String. The reference is not released.
func GoString(env jni.Env, s jni.Referent) (string, error) {
	var obj jni.Object
	if s != nil {
		obj = s.Handle()
	}
	if obj == jni.Null {
		return "", errors.NullReference(errors.PhaseCall, "java.lang.String")
	}
	return env.GetStringUTF(obj), nil
}

// TakeString reads a java.lang.String and releases the local reference.
func TakeString(env jni.Env, s *ref.Local[jni.StringRef]) (string, error) {
	defer s.Release()
	return GoString(env, s)
}
