package jnitest

import (
	jni "github.com/wippyai/go-jni"
)

// Call is the context passed to a mock method body.
type Call struct {
	Env    *Env
	Method *Method
	// This is nil for static methods.
	This  *Instance
	Class *Class
	Args  []jni.Value
}

// Object resolves the i-th argument as an object handle.
func (c *Call) Object(i int) *Instance {
	c.Env.vm.mu.Lock()
	defer c.Env.vm.mu.Unlock()
	return c.Env.derefLocked(c.Method.Name, c.Args[i].Object())
}

// String returns the i-th argument as a Go string; null yields "".
func (c *Call) String(i int) string {
	inst := c.Object(i)
	if inst == nil {
		return ""
	}
	s, _ := inst.Value.(string)
	return s
}

// Return hands inst back to the caller as a new local reference.
func (c *Call) Return(inst *Instance) jni.Value {
	return jni.ObjectValue(c.Env.NewLocal(inst))
}

// ReturnString returns a new java.lang.String holding s.
func (c *Call) ReturnString(s string) jni.Value {
	return c.Return(c.Env.vm.New("java/lang/String", s))
}

// Throw raises an exception and returns the zero value.
func (c *Call) Throw(className, msg string) jni.Value {
	c.Env.Throw(className, msg)
	return 0
}

// HoldsMonitor reports whether the calling environment owns This's monitor.
func (c *Call) HoldsMonitor() bool {
	c.Env.vm.mu.Lock()
	defer c.Env.vm.mu.Unlock()
	return c.This != nil && c.This.monitorOwner == c.Env
}
