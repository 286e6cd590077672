package ref

import (
	"fmt"

	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
)

// Local owns one JNI local reference, statically typed as category T.
//
// A Local is bound to the Env (and thus the thread) that produced it. Release
// it exactly once, usually with defer right after the call that returned it:
//
//	s, err := toString.Call(env, obj)
//	if err != nil {
//	    return err
//	}
//	defer s.Release()
type Local[T jni.RefType] struct {
	env      jni.Env
	obj      jni.Object
	released bool
}

// NewLocal takes ownership of an existing local reference.
func NewLocal[T jni.RefType](env jni.Env, obj jni.Object) *Local[T] {
	return &Local[T]{env: env, obj: obj}
}

// Handle returns the underlying handle. Nil and released locals yield null.
func (l *Local[T]) Handle() jni.Object {
	if l == nil || l.released {
		return jni.Null
	}
	return l.obj
}

// IsNull reports whether the reference holds no object.
func (l *Local[T]) IsNull() bool { return l.Handle() == jni.Null }

// Env returns the environment the reference belongs to.
func (l *Local[T]) Env() jni.Env {
	if l == nil {
		return nil
	}
	return l.env
}

// Release deletes the local reference. Further calls are no-ops.
func (l *Local[T]) Release() {
	if l == nil {
		return
	}
	if l.released {
		Logger().Debug("local reference already released", zap.String("type", typeName[T]()))
		return
	}
	l.released = true
	if l.obj != jni.Null {
		l.env.DeleteLocalRef(l.obj)
	}
	l.obj = jni.Null
}

// Close implements io.Closer.
func (l *Local[T]) Close() error {
	l.Release()
	return nil
}

// Detach gives up ownership and returns the raw handle. The caller becomes
// responsible for deleting it.
func (l *Local[T]) Detach() jni.Object {
	obj := l.Handle()
	if l != nil {
		l.released = true
		l.obj = jni.Null
	}
	return obj
}

// Global promotes the referent to a new global reference. The local stays
// owned by the caller.
func (l *Local[T]) Global() (*Global[T], error) {
	obj := l.Handle()
	if obj == jni.Null {
		return nil, errors.NullReference(errors.PhaseReference, typeName[T]())
	}
	g := l.env.NewGlobalRef(obj)
	if g == jni.Null {
		return nil, errors.AllocationFailed(errors.PhaseReference, "global reference")
	}
	return &Global[T]{obj: g}, nil
}

// Weak creates a weak global reference to the referent.
func (l *Local[T]) Weak() (*Weak[T], error) {
	obj := l.Handle()
	if obj == jni.Null {
		return nil, errors.NullReference(errors.PhaseReference, typeName[T]())
	}
	w := l.env.NewWeakGlobalRef(obj)
	if w == jni.Null {
		return nil, errors.AllocationFailed(errors.PhaseReference, "weak global reference")
	}
	return &Weak[T]{obj: w}, nil
}

// Descriptor implements jni.Type with T's descriptor.
func (*Local[T]) Descriptor() string {
	var t T
	return t.Descriptor()
}

// Value implements jni.Arg. Ownership is not transferred.
func (l *Local[T]) Value() jni.Value { return jni.ObjectValue(l.Handle()) }

// Invoke implements jni.Result through the single object-return primitive.
func (*Local[T]) Invoke(env jni.Env, obj jni.Object, id jni.MethodID, args []jni.Value) jni.Value {
	return jni.InvokeObject(env, obj, id, args)
}

// InvokeStatic implements jni.Result.
func (*Local[T]) InvokeStatic(env jni.Env, cls jni.Class, id jni.MethodID, args []jni.Value) jni.Value {
	return jni.InvokeStaticObject(env, cls, id, args)
}

// Adapt wraps the returned handle as T. The method's declared return type is
// trusted; no runtime type check is made.
func (*Local[T]) Adapt(env jni.Env, raw jni.Value) *Local[T] {
	return NewLocal[T](env, raw.Object())
}

func (l *Local[T]) String() string {
	return fmt.Sprintf("Local[%s](0x%x)", typeName[T](), uintptr(l.Handle()))
}

// Cast moves ownership of l into a Local of another category. l is left
// released. Like Adapt, the new category is trusted, not checked.
func Cast[U, T jni.RefType](l *Local[T]) *Local[U] {
	if l == nil {
		return nil
	}
	env := l.env
	return NewLocal[U](env, l.Detach())
}

func typeName[T jni.RefType]() string {
	var t T
	return t.ClassName()
}
