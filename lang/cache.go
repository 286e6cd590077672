package lang

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/ref"
)

// Cache holds the lazily resolved method tables of the java.lang classes
// this package calls into. Create one per process (or per VM) and share it;
// each table is resolved at most once, on first use, from whichever Env gets
// there first. Tables are read-only afterwards.
type Cache struct {
	object    lazy[objectTable]
	class     lazy[classTable]
	throwable lazy[throwableTable]
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

type objectTable struct {
	class     *ref.Global[jni.ClassRef]
	hashCode  jni.Method0[jni.Int]
	toString  jni.Method0[*ref.Local[jni.StringRef]]
	equals    jni.Method1[jni.Boolean, jni.Object]
	notify    jni.Method0[jni.Void]
	notifyAll jni.Method0[jni.Void]
	wait0     jni.Method0[jni.Void]
	wait1     jni.Method1[jni.Void, jni.Long]
	wait2     jni.Method2[jni.Void, jni.Long, jni.Int]
}

type classTable struct {
	class   *ref.Global[jni.ClassRef]
	getName jni.Method0[*ref.Local[jni.StringRef]]
}

type throwableTable struct {
	class      *ref.Global[jni.ClassRef]
	getMessage jni.Method0[*ref.Local[jni.StringRef]]
}

func (c *Cache) objects(env jni.Env) (*objectTable, error) {
	return c.object.get(func() (*objectTable, error) {
		r, err := newResolver(env, "java/lang/Object")
		if err != nil {
			return nil, err
		}
		t := &objectTable{
			class:     r.class,
			hashCode:  method0[jni.Int](r, "hashCode"),
			toString:  method0[*ref.Local[jni.StringRef]](r, "toString"),
			equals:    method1[jni.Boolean, jni.Object](r, "equals"),
			notify:    method0[jni.Void](r, "notify"),
			notifyAll: method0[jni.Void](r, "notifyAll"),
			wait0:     method0[jni.Void](r, "wait"),
			wait1:     method1[jni.Void, jni.Long](r, "wait"),
			wait2:     method2[jni.Void, jni.Long, jni.Int](r, "wait"),
		}
		return t, r.done()
	})
}

func (c *Cache) classes(env jni.Env) (*classTable, error) {
	return c.class.get(func() (*classTable, error) {
		r, err := newResolver(env, "java/lang/Class")
		if err != nil {
			return nil, err
		}
		t := &classTable{
			class:   r.class,
			getName: method0[*ref.Local[jni.StringRef]](r, "getName"),
		}
		return t, r.done()
	})
}

func (c *Cache) throwables(env jni.Env) (*throwableTable, error) {
	return c.throwable.get(func() (*throwableTable, error) {
		r, err := newResolver(env, "java/lang/Throwable")
		if err != nil {
			return nil, err
		}
		t := &throwableTable{
			class:      r.class,
			getMessage: method0[*ref.Local[jni.StringRef]](r, "getMessage"),
		}
		return t, r.done()
	})
}

// Release drops the global class references held by resolved tables and
// resets the cache. It must not run concurrently with other use of c.
func (c *Cache) Release(env jni.Env) {
	if t := c.object.reset(); t != nil {
		t.class.Release(env)
	}
	if t := c.class.reset(); t != nil {
		t.class.Release(env)
	}
	if t := c.throwable.reset(); t != nil {
		t.class.Release(env)
	}
}

// lazy is a sync.Once that does not latch failures: a failed initialisation
// is retried by the next caller.
type lazy[T any] struct {
	mu   sync.Mutex
	done atomic.Bool
	val  *T
}

func (l *lazy[T]) get(init func() (*T, error)) (*T, error) {
	if l.done.Load() {
		return l.val, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done.Load() {
		return l.val, nil
	}
	v, err := init()
	if err != nil {
		return nil, err
	}
	l.val = v
	l.done.Store(true)
	return v, nil
}

func (l *lazy[T]) reset() *T {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := l.val
	l.val = nil
	l.done.Store(false)
	return v
}

// resolver looks up a sequence of methods on one class and keeps the first
// error. On failure done releases the class reference.
type resolver struct {
	env   jni.Env
	name  string
	class *ref.Global[jni.ClassRef]
	err   error
}

func newResolver(env jni.Env, name string) (*resolver, error) {
	cls, err := loadClass(env, name)
	if err != nil {
		return nil, err
	}
	return &resolver{env: env, name: name, class: cls}, nil
}

func (r *resolver) raw() jni.Class { return jni.Class(r.class.Handle()) }

func (r *resolver) done() error {
	if r.err != nil {
		r.class.Release(r.env)
		return r.err
	}
	Logger().Debug("method table resolved", zap.String("class", r.name))
	return nil
}

func method0[R jni.Result[R]](r *resolver, name string) jni.Method0[R] {
	if r.err != nil {
		return jni.Method0[R]{}
	}
	m, err := jni.ResolveMethod0[R](r.env, r.raw(), name)
	r.err = err
	return m
}

func method1[R jni.Result[R], A1 jni.Arg](r *resolver, name string) jni.Method1[R, A1] {
	if r.err != nil {
		return jni.Method1[R, A1]{}
	}
	m, err := jni.ResolveMethod1[R, A1](r.env, r.raw(), name)
	r.err = err
	return m
}

func method2[R jni.Result[R], A1, A2 jni.Arg](r *resolver, name string) jni.Method2[R, A1, A2] {
	if r.err != nil {
		return jni.Method2[R, A1, A2]{}
	}
	m, err := jni.ResolveMethod2[R, A1, A2](r.env, r.raw(), name)
	r.err = err
	return m
}

// loadClass finds a class and pins it with a global reference.
func loadClass(env jni.Env, name string) (*ref.Global[jni.ClassRef], error) {
	cls, err := jni.FindClass(env, name)
	if err != nil {
		return nil, err
	}
	defer env.DeleteLocalRef(jni.Object(cls))
	return ref.NewGlobal[jni.ClassRef](env, jni.Object(cls))
}
