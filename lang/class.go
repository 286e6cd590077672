package lang

import (
	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
	"github.com/wippyai/go-jni/ref"
)

// Class wraps a java.lang.Class reference.
type Class struct {
	cache *Cache
	ref   owned[jni.ClassRef]
}

// ForName finds a class by binary name ("java/util/HashMap") and holds it by
// a global reference, so the result may be kept and shared across threads.
func (c *Cache) ForName(env jni.Env, name string) (*Class, error) {
	g, err := loadClass(env, name)
	if err != nil {
		return nil, c.Describe(env, err)
	}
	return &Class{cache: c, ref: owned[jni.ClassRef]{global: g}}, nil
}

// Handle implements jni.Referent.
func (c *Class) Handle() jni.Object {
	if c == nil {
		return jni.Null
	}
	return c.ref.handle()
}

// Raw returns the handle typed for method resolution and static calls.
func (c *Class) Raw() jni.Class { return jni.Class(c.Handle()) }

// IsNull reports whether c holds no class.
func (c *Class) IsNull() bool { return c.Handle() == jni.Null }

// IsGlobal reports whether c is held by a global reference.
func (c *Class) IsGlobal() bool { return c != nil && c.ref.global != nil }

// GetName calls getName(), which returns the dotted binary name
// ("java.lang.String").
func (c *Class) GetName(env jni.Env) (string, error) {
	name, err := c.getName(env)
	if err != nil {
		return "", c.cache.Describe(env, err)
	}
	return name, nil
}

// getName leaves a raised exception undescribed.
func (c *Class) getName(env jni.Env) (string, error) {
	if c.IsNull() {
		return "", errors.NullReference(errors.PhaseCall, "*lang.Class")
	}
	t, err := c.cache.classes(env)
	if err != nil {
		return "", err
	}
	s, err := t.getName.Call(env, c)
	if err != nil {
		return "", err
	}
	return TakeString(env, s)
}

// Global promotes c to a global reference. A class that is already global is
// returned as is.
func (c *Class) Global(env jni.Env) (*Class, error) {
	if c.IsGlobal() {
		return c, nil
	}
	g, err := ref.NewGlobal[jni.ClassRef](env, c.Handle())
	if err != nil {
		return nil, err
	}
	return &Class{cache: c.cache, ref: owned[jni.ClassRef]{global: g}}, nil
}

// Release drops the owned reference.
func (c *Class) Release(env jni.Env) {
	if c != nil {
		c.ref.release(env)
	}
}
