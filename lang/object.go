package lang

import (
	"time"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
	"github.com/wippyai/go-jni/ref"
)

// owned is either a local or a global reference of category T.
type owned[T jni.RefType] struct {
	local  *ref.Local[T]
	global *ref.Global[T]
}

func (o owned[T]) handle() jni.Object {
	if o.global != nil {
		return o.global.Handle()
	}
	return o.local.Handle()
}

func (o owned[T]) release(env jni.Env) {
	o.local.Release()
	o.global.Release(env)
}

// Object wraps a java.lang.Object reference and exposes its methods.
type Object struct {
	cache *Cache
	ref   owned[jni.ObjectRef]
}

// NewObject takes ownership of a local reference.
func (c *Cache) NewObject(l *ref.Local[jni.ObjectRef]) *Object {
	return &Object{cache: c, ref: owned[jni.ObjectRef]{local: l}}
}

// NewGlobalObject takes ownership of a global reference.
func (c *Cache) NewGlobalObject(g *ref.Global[jni.ObjectRef]) *Object {
	return &Object{cache: c, ref: owned[jni.ObjectRef]{global: g}}
}

// Handle implements jni.Referent.
func (o *Object) Handle() jni.Object {
	if o == nil {
		return jni.Null
	}
	return o.ref.handle()
}

// IsNull reports whether o holds no object.
func (o *Object) IsNull() bool { return o.Handle() == jni.Null }

// Release drops the owned reference.
func (o *Object) Release(env jni.Env) {
	if o != nil {
		o.ref.release(env)
	}
}

func (o *Object) table(env jni.Env) (*objectTable, error) {
	if o.IsNull() {
		return nil, errors.NullReference(errors.PhaseCall, "*lang.Object")
	}
	t, err := o.cache.objects(env)
	if err != nil {
		return nil, o.cache.Describe(env, err)
	}
	return t, nil
}

// HashCode calls hashCode().
func (o *Object) HashCode(env jni.Env) (int32, error) {
	t, err := o.table(env)
	if err != nil {
		return 0, err
	}
	h, err := t.hashCode.Call(env, o)
	return int32(h), o.cache.Describe(env, err)
}

// ToString calls toString() and converts the result.
func (o *Object) ToString(env jni.Env) (string, error) {
	t, err := o.table(env)
	if err != nil {
		return "", err
	}
	s, err := t.toString.Call(env, o)
	if err != nil {
		return "", o.cache.Describe(env, err)
	}
	return TakeString(env, s)
}

// Equals calls equals(other). A nil other is passed as null.
func (o *Object) Equals(env jni.Env, other jni.Referent) (bool, error) {
	t, err := o.table(env)
	if err != nil {
		return false, err
	}
	var arg jni.Object
	if other != nil {
		arg = other.Handle()
	}
	eq, err := t.equals.Call(env, o, arg)
	return bool(eq), o.cache.Describe(env, err)
}

// GetClass returns the runtime class of o as a local reference.
func (o *Object) GetClass(env jni.Env) (*Class, error) {
	if o.IsNull() {
		return nil, errors.NullReference(errors.PhaseCall, "*lang.Object")
	}
	cls := env.GetObjectClass(o.Handle())
	if err := jni.CheckException(env); err != nil {
		return nil, o.cache.Describe(env, err)
	}
	if cls.IsNull() {
		return nil, errors.AllocationFailed(errors.PhaseReference, "local reference")
	}
	l := ref.NewLocal[jni.ClassRef](env, jni.Object(cls))
	return &Class{cache: o.cache, ref: owned[jni.ClassRef]{local: l}}, nil
}

// Notify calls notify(). The calling thread must hold o's monitor.
func (o *Object) Notify(env jni.Env) error {
	t, err := o.table(env)
	if err != nil {
		return err
	}
	_, err = t.notify.Call(env, o)
	return o.cache.Describe(env, err)
}

// NotifyAll calls notifyAll(). The calling thread must hold o's monitor.
func (o *Object) NotifyAll(env jni.Env) error {
	t, err := o.table(env)
	if err != nil {
		return err
	}
	_, err = t.notifyAll.Call(env, o)
	return o.cache.Describe(env, err)
}

// Wait calls wait() and blocks until notified.
func (o *Object) Wait(env jni.Env) error {
	t, err := o.table(env)
	if err != nil {
		return err
	}
	_, err = t.wait0.Call(env, o)
	return o.cache.Describe(env, err)
}

// WaitFor calls wait with a timeout. Whole milliseconds use wait(long);
// anything finer is split into milliseconds and a nanosecond remainder for
// wait(long, int). A zero duration waits without timeout, as in Java.
func (o *Object) WaitFor(env jni.Env, d time.Duration) error {
	t, err := o.table(env)
	if err != nil {
		return err
	}
	millis := int64(d / time.Millisecond)
	nanos := int32(d % time.Millisecond)
	if nanos == 0 {
		_, err = t.wait1.Call(env, o, jni.Long(millis))
		return o.cache.Describe(env, err)
	}
	_, err = t.wait2.Call(env, o, jni.Long(millis), jni.Int(nanos))
	return o.cache.Describe(env, err)
}

// Lock enters o's monitor. Close the returned Monitor to leave it.
func (o *Object) Lock(env jni.Env) (*Monitor, error) {
	m := &Monitor{env: env, obj: o, cache: o.cache}
	if err := m.Enter(); err != nil {
		return nil, err
	}
	return m, nil
}
