package ref

import (
	"fmt"

	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
)

// Global owns a JNI global reference. It is valid on every thread until
// Release is called. Concurrent Release of the same Global is a caller error.
type Global[T jni.RefType] struct {
	obj      jni.Object
	released bool
}

// NewGlobal promotes obj to a new global reference. obj itself is not
// consumed.
func NewGlobal[T jni.RefType](env jni.Env, obj jni.Object) (*Global[T], error) {
	if obj == jni.Null {
		return nil, errors.NullReference(errors.PhaseReference, typeName[T]())
	}
	g := env.NewGlobalRef(obj)
	if g == jni.Null {
		return nil, errors.AllocationFailed(errors.PhaseReference, "global reference")
	}
	return &Global[T]{obj: g}, nil
}

// AdoptGlobal takes ownership of an existing global reference.
func AdoptGlobal[T jni.RefType](obj jni.Object) *Global[T] {
	return &Global[T]{obj: obj}
}

// Handle returns the underlying handle, null once released.
func (g *Global[T]) Handle() jni.Object {
	if g == nil || g.released {
		return jni.Null
	}
	return g.obj
}

// IsNull reports whether the reference holds no object.
func (g *Global[T]) IsNull() bool { return g.Handle() == jni.Null }

// Release deletes the global reference through env, which may belong to any
// attached thread. Further calls are no-ops.
func (g *Global[T]) Release(env jni.Env) {
	if g == nil {
		return
	}
	if g.released {
		Logger().Debug("global reference already released", zap.String("type", typeName[T]()))
		return
	}
	g.released = true
	if g.obj != jni.Null {
		env.DeleteGlobalRef(g.obj)
	}
	g.obj = jni.Null
}

// Local creates a new local reference in env to the same object.
func (g *Global[T]) Local(env jni.Env) (*Local[T], error) {
	obj := g.Handle()
	if obj == jni.Null {
		return nil, errors.NullReference(errors.PhaseReference, typeName[T]())
	}
	l := env.NewLocalRef(obj)
	if l == jni.Null {
		return nil, errors.AllocationFailed(errors.PhaseReference, "local reference")
	}
	return NewLocal[T](env, l), nil
}

// Weak creates a weak global reference to the same object.
func (g *Global[T]) Weak(env jni.Env) (*Weak[T], error) {
	obj := g.Handle()
	if obj == jni.Null {
		return nil, errors.NullReference(errors.PhaseReference, typeName[T]())
	}
	w := env.NewWeakGlobalRef(obj)
	if w == jni.Null {
		return nil, errors.AllocationFailed(errors.PhaseReference, "weak global reference")
	}
	return &Weak[T]{obj: w}, nil
}

// Descriptor implements jni.Type.
func (*Global[T]) Descriptor() string {
	var t T
	return t.Descriptor()
}

// Value implements jni.Arg. Ownership is not transferred.
func (g *Global[T]) Value() jni.Value { return jni.ObjectValue(g.Handle()) }

func (g *Global[T]) String() string {
	return fmt.Sprintf("Global[%s](0x%x)", typeName[T](), uintptr(g.Handle()))
}
