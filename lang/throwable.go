package lang

import (
	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/ref"
)

// Throwable is a Java exception rendered into Go values. The Java object has
// already been released; Unwrap returns the error it was described from.
type Throwable struct {
	// ClassName is the dotted class name, e.g. "java.lang.IllegalStateException".
	ClassName string
	Message   string
	Err       error
}

func (t *Throwable) Error() string {
	if t.Message == "" {
		return t.ClassName
	}
	return t.ClassName + ": " + t.Message
}

func (t *Throwable) Unwrap() error { return t.Err }

// Describe replaces the throwable reference carried by an exception error
// with its class name and message, and releases the reference. Errors that
// carry no throwable are returned unchanged. Failures while describing are
// logged and leave the corresponding field at its fallback.
//
// Methods of this package already describe the errors they return; Describe
// is for errors from jni.Call and method resolution. A nil c resolves what it
// needs into a temporary cache.
func (c *Cache) Describe(env jni.Env, err error) error {
	obj, ok := jni.ThrowableOf(err)
	if !ok {
		return err
	}
	if c == nil {
		c = NewCache()
		defer c.Release(env)
	}
	t := &Throwable{Err: err}
	t.ClassName, t.Message = c.describe(env, obj)
	jni.ReleaseException(env, err)
	return t
}

func (c *Cache) describe(env jni.Env, obj jni.Object) (className, message string) {
	className = "java.lang.Throwable"

	if cls := env.GetObjectClass(obj); !cls.IsNull() {
		k := &Class{cache: c, ref: owned[jni.ClassRef]{local: ref.NewLocal[jni.ClassRef](env, jni.Object(cls))}}
		name, err := k.getName(env)
		k.Release(env)
		if err != nil {
			Logger().Debug("throwable class name unavailable", zap.Error(err))
			jni.ReleaseException(env, err)
		} else {
			className = name
		}
	}

	t, err := c.throwables(env)
	if err != nil {
		Logger().Debug("throwable method table unavailable", zap.Error(err))
		jni.ReleaseException(env, err)
		return className, ""
	}
	s, err := t.getMessage.Call(env, obj)
	if err != nil {
		Logger().Debug("getMessage raised", zap.Error(err))
		jni.ReleaseException(env, err)
		return className, ""
	}
	if s.IsNull() {
		return className, ""
	}
	message, _ = TakeString(env, s)
	return className, message
}
