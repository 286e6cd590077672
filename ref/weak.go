package ref

import (
	"fmt"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
)

// Weak is a weak global reference. It never keeps its referent alive and has
// no direct handle access: Upgrade or UpgradeGlobal first.
type Weak[T jni.RefType] struct {
	obj      jni.Object
	released bool
}

// NewWeak creates a weak global reference to obj.
func NewWeak[T jni.RefType](env jni.Env, obj jni.Object) (*Weak[T], error) {
	if obj == jni.Null {
		return nil, errors.NullReference(errors.PhaseReference, typeName[T]())
	}
	w := env.NewWeakGlobalRef(obj)
	if w == jni.Null {
		return nil, errors.AllocationFailed(errors.PhaseReference, "weak global reference")
	}
	return &Weak[T]{obj: w}, nil
}

// Upgrade returns a new local reference to the referent, or an error of kind
// KindCollected once the referent has been collected.
func (w *Weak[T]) Upgrade(env jni.Env) (*Local[T], error) {
	if w == nil || w.released {
		return nil, errors.NullReference(errors.PhaseReference, "*ref.Weak["+typeName[T]()+"]")
	}
	obj := env.NewLocalRef(w.obj)
	if obj == jni.Null {
		return nil, errors.Collected("*ref.Weak[" + typeName[T]() + "]")
	}
	return NewLocal[T](env, obj), nil
}

// UpgradeGlobal returns a new global reference to the referent, or an error
// of kind KindCollected.
func (w *Weak[T]) UpgradeGlobal(env jni.Env) (*Global[T], error) {
	l, err := w.Upgrade(env)
	if err != nil {
		return nil, err
	}
	defer l.Release()
	return l.Global()
}

// Expired reports whether the referent has been collected. The answer can
// go stale immediately; use Upgrade to act on a live object.
func (w *Weak[T]) Expired(env jni.Env) bool {
	if w == nil || w.released {
		return true
	}
	return env.IsSameObject(w.obj, jni.Null)
}

// Release deletes the weak reference. Further calls are no-ops.
func (w *Weak[T]) Release(env jni.Env) {
	if w == nil || w.released {
		return
	}
	w.released = true
	env.DeleteWeakGlobalRef(w.obj)
	w.obj = jni.Null
}

func (w *Weak[T]) String() string {
	state := "live"
	if w == nil || w.released {
		state = "released"
	}
	return fmt.Sprintf("Weak[%s](%s)", typeName[T](), state)
}
