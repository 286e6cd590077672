package jnitest

import (
	"sort"

	jni "github.com/wippyai/go-jni"
)

// Functions JNI allows while an exception is pending.
var allowedWhilePending = map[string]bool{
	"ExceptionCheck":      true,
	"ExceptionOccurred":   true,
	"ExceptionClear":      true,
	"DeleteLocalRef":      true,
	"DeleteGlobalRef":     true,
	"DeleteWeakGlobalRef": true,
	"MonitorExit":         true,
}

// Env is the mock per-thread environment. It implements jni.Env and counts
// every primitive invoked through it.
type Env struct {
	vm      *VM
	pending *Instance
	calls   map[string]int
}

var _ jni.Env = (*Env)(nil)

// VM returns the VM the environment belongs to.
func (e *Env) VM() *VM { return e.vm }

// Calls returns how many times the named JNI function was invoked.
func (e *Env) Calls(fn string) int {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	return e.calls[fn]
}

// CalledFunctions returns the names of all invoked JNI functions, sorted.
func (e *Env) CalledFunctions() []string {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	names := make([]string, 0, len(e.calls))
	for name := range e.calls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalCalls returns the number of JNI functions invoked so far.
func (e *Env) TotalCalls() int {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	n := 0
	for _, c := range e.calls {
		n += c
	}
	return n
}

// ResetCalls clears the call counters.
func (e *Env) ResetCalls() {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.calls = make(map[string]int)
}

// LiveLocals counts the live local references owned by this environment.
func (e *Env) LiveLocals() int {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	return e.vm.liveLocked(kindLocal, e)
}

// Pending returns the pending exception, if any.
func (e *Env) Pending() *Instance {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	return e.pending
}

// Deref resolves a handle to its instance without recording a call.
func (e *Env) Deref(obj jni.Object) *Instance {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	return e.derefLocked("Deref", obj)
}

// NewLocal creates a local reference to inst owned by this environment.
func (e *Env) NewLocal(inst *Instance) jni.Object {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	return e.vm.newRefLocked(inst, kindLocal, e)
}

// NewGlobal creates a global reference to inst.
func (e *Env) NewGlobal(inst *Instance) jni.Object {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	return e.vm.newRefLocked(inst, kindGlobal, nil)
}

// Throw makes an exception of the named class pending. Unknown classes are
// defined as subclasses of java/lang/RuntimeException.
func (e *Env) Throw(className, msg string) {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	c := e.vm.classes[className]
	if c == nil {
		c = e.vm.defineClassLocked(className, "java/lang/RuntimeException")
	}
	e.pending = e.vm.newInstanceLocked(c, msg)
}

func (e *Env) recordLocked(fn string) {
	e.calls[fn]++
	if e.pending != nil && !allowedWhilePending[fn] {
		e.vm.misuseLocked("%s called with pending %s", fn, e.pending.Class.Name)
	}
}

func (e *Env) derefLocked(fn string, obj jni.Object) *Instance {
	if obj == jni.Null {
		return nil
	}
	idx := int(obj) - 1
	if idx < 0 || idx >= len(e.vm.refs) {
		e.vm.misuseLocked("%s: invalid reference %v", fn, obj)
		return nil
	}
	r := &e.vm.refs[idx]
	if !r.live {
		e.vm.misuseLocked("%s: use of deleted %s reference %v", fn, r.kind, obj)
		return nil
	}
	if r.kind == kindLocal && r.owner != e {
		e.vm.misuseLocked("%s: local reference %v used from another thread", fn, obj)
	}
	if r.inst.collected {
		return nil
	}
	return r.inst
}

func (e *Env) deleteLocked(fn string, obj jni.Object, kind refKind) {
	if obj == jni.Null {
		return
	}
	idx := int(obj) - 1
	if idx < 0 || idx >= len(e.vm.refs) {
		e.vm.misuseLocked("%s: invalid reference %v", fn, obj)
		return
	}
	r := &e.vm.refs[idx]
	r.deletes++
	switch {
	case !r.live:
		e.vm.misuseLocked("%s: %s reference %v deleted twice", fn, r.kind, obj)
	case r.kind != kind:
		e.vm.misuseLocked("%s: reference %v is %s", fn, obj, r.kind)
	case kind == kindLocal && r.owner != e:
		e.vm.misuseLocked("%s: local reference %v deleted from another thread", fn, obj)
	default:
		r.live = false
	}
}

func (e *Env) throwLocked(className, msg string) {
	c := e.vm.classes[className]
	if c == nil {
		c = e.vm.defineClassLocked(className, "java/lang/RuntimeException")
	}
	e.pending = e.vm.newInstanceLocked(c, msg)
}

func (e *Env) classLocked(fn string, cls jni.Class) *Class {
	inst := e.derefLocked(fn, jni.Object(cls))
	if inst == nil {
		return nil
	}
	c, ok := inst.Value.(*Class)
	if !ok {
		e.vm.misuseLocked("%s: %v is not a class", fn, cls)
		return nil
	}
	return c
}

func (e *Env) FindClass(name string) jni.Class {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("FindClass")
	c := e.vm.classes[name]
	if c == nil {
		e.throwLocked("java/lang/NoClassDefFoundError", name)
		return 0
	}
	return jni.Class(e.vm.newRefLocked(c.Object, kindLocal, e))
}

func (e *Env) GetObjectClass(obj jni.Object) jni.Class {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("GetObjectClass")
	inst := e.derefLocked("GetObjectClass", obj)
	if inst == nil {
		e.vm.misuseLocked("GetObjectClass: null object")
		return 0
	}
	return jni.Class(e.vm.newRefLocked(inst.Class.Object, kindLocal, e))
}

func (e *Env) GetMethodID(cls jni.Class, name, sig string) jni.MethodID {
	return e.getMethodID("GetMethodID", cls, name, sig, false)
}

func (e *Env) GetStaticMethodID(cls jni.Class, name, sig string) jni.MethodID {
	return e.getMethodID("GetStaticMethodID", cls, name, sig, true)
}

func (e *Env) getMethodID(fn string, cls jni.Class, name, sig string, static bool) jni.MethodID {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked(fn)
	c := e.classLocked(fn, cls)
	if c == nil {
		e.vm.misuseLocked("%s: null class", fn)
		return 0
	}
	m := c.lookup(name, sig, static)
	if m == nil {
		e.throwLocked("java/lang/NoSuchMethodError", name)
		return 0
	}
	return m.id
}

// invoke runs a method body with the VM lock released so the body can call
// back into the environment.
func (e *Env) invoke(fn string, kind byte, static bool, target jni.Object, id jni.MethodID, args []jni.Value) jni.Value {
	e.vm.mu.Lock()
	e.recordLocked(fn)
	m := e.vm.methodLocked(id)
	if m == nil {
		e.vm.misuseLocked("%s: invalid method id %v", fn, id)
		e.vm.mu.Unlock()
		return 0
	}
	if m.Static != static {
		e.vm.misuseLocked("%s: %s.%s%s static=%v", fn, m.Class.Name, m.Name, m.Descriptor, m.Static)
	}
	if m.returnKind() != kind {
		e.vm.misuseLocked("%s: %s.%s%s has a different return kind", fn, m.Class.Name, m.Name, m.Descriptor)
	}

	call := &Call{Env: e, Method: m, Args: append([]jni.Value(nil), args...)}
	if static {
		call.Class = e.classLocked(fn, jni.Class(target))
		if call.Class == nil || !call.Class.IsSubclassOf(m.Class) {
			e.vm.misuseLocked("%s: class does not declare %s.%s", fn, m.Class.Name, m.Name)
		}
	} else {
		call.This = e.derefLocked(fn, target)
		if call.This == nil {
			e.throwLocked("java/lang/NullPointerException", m.Name)
			e.vm.mu.Unlock()
			return 0
		}
		call.Class = call.This.Class
		// virtual dispatch to the most specific override
		if impl := call.This.Class.lookup(m.Name, m.Descriptor, false); impl != nil {
			call.Method = impl
		}
	}
	e.vm.mu.Unlock()

	return call.Method.Fn(call)
}

func (e *Env) CallObjectMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) jni.Object {
	return e.invoke("CallObjectMethodA", 'L', false, obj, id, args).Object()
}

func (e *Env) CallBooleanMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) bool {
	return e.invoke("CallBooleanMethodA", 'Z', false, obj, id, args).Boolean()
}

func (e *Env) CallByteMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) int8 {
	return e.invoke("CallByteMethodA", 'B', false, obj, id, args).Byte()
}

func (e *Env) CallCharMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) uint16 {
	return e.invoke("CallCharMethodA", 'C', false, obj, id, args).Char()
}

func (e *Env) CallShortMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) int16 {
	return e.invoke("CallShortMethodA", 'S', false, obj, id, args).Short()
}

func (e *Env) CallIntMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) int32 {
	return e.invoke("CallIntMethodA", 'I', false, obj, id, args).Int()
}

func (e *Env) CallLongMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) int64 {
	return e.invoke("CallLongMethodA", 'J', false, obj, id, args).Long()
}

func (e *Env) CallFloatMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) float32 {
	return e.invoke("CallFloatMethodA", 'F', false, obj, id, args).Float()
}

func (e *Env) CallDoubleMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) float64 {
	return e.invoke("CallDoubleMethodA", 'D', false, obj, id, args).Double()
}

func (e *Env) CallVoidMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) {
	e.invoke("CallVoidMethodA", 'V', false, obj, id, args)
}

func (e *Env) CallStaticObjectMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) jni.Object {
	return e.invoke("CallStaticObjectMethodA", 'L', true, jni.Object(cls), id, args).Object()
}

func (e *Env) CallStaticBooleanMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) bool {
	return e.invoke("CallStaticBooleanMethodA", 'Z', true, jni.Object(cls), id, args).Boolean()
}

func (e *Env) CallStaticByteMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) int8 {
	return e.invoke("CallStaticByteMethodA", 'B', true, jni.Object(cls), id, args).Byte()
}

func (e *Env) CallStaticCharMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) uint16 {
	return e.invoke("CallStaticCharMethodA", 'C', true, jni.Object(cls), id, args).Char()
}

func (e *Env) CallStaticShortMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) int16 {
	return e.invoke("CallStaticShortMethodA", 'S', true, jni.Object(cls), id, args).Short()
}

func (e *Env) CallStaticIntMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) int32 {
	return e.invoke("CallStaticIntMethodA", 'I', true, jni.Object(cls), id, args).Int()
}

func (e *Env) CallStaticLongMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) int64 {
	return e.invoke("CallStaticLongMethodA", 'J', true, jni.Object(cls), id, args).Long()
}

func (e *Env) CallStaticFloatMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) float32 {
	return e.invoke("CallStaticFloatMethodA", 'F', true, jni.Object(cls), id, args).Float()
}

func (e *Env) CallStaticDoubleMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) float64 {
	return e.invoke("CallStaticDoubleMethodA", 'D', true, jni.Object(cls), id, args).Double()
}

func (e *Env) CallStaticVoidMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) {
	e.invoke("CallStaticVoidMethodA", 'V', true, jni.Object(cls), id, args)
}

func (e *Env) ExceptionCheck() bool {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("ExceptionCheck")
	return e.pending != nil
}

func (e *Env) ExceptionOccurred() jni.Object {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("ExceptionOccurred")
	return e.vm.newRefLocked(e.pending, kindLocal, e)
}

func (e *Env) ExceptionClear() {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("ExceptionClear")
	e.pending = nil
}

func (e *Env) NewLocalRef(obj jni.Object) jni.Object {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("NewLocalRef")
	return e.vm.newRefLocked(e.derefLocked("NewLocalRef", obj), kindLocal, e)
}

func (e *Env) DeleteLocalRef(obj jni.Object) {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("DeleteLocalRef")
	e.deleteLocked("DeleteLocalRef", obj, kindLocal)
}

func (e *Env) NewGlobalRef(obj jni.Object) jni.Object {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("NewGlobalRef")
	return e.vm.newRefLocked(e.derefLocked("NewGlobalRef", obj), kindGlobal, nil)
}

func (e *Env) DeleteGlobalRef(obj jni.Object) {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("DeleteGlobalRef")
	e.deleteLocked("DeleteGlobalRef", obj, kindGlobal)
}

func (e *Env) NewWeakGlobalRef(obj jni.Object) jni.Object {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("NewWeakGlobalRef")
	return e.vm.newRefLocked(e.derefLocked("NewWeakGlobalRef", obj), kindWeak, nil)
}

func (e *Env) DeleteWeakGlobalRef(obj jni.Object) {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("DeleteWeakGlobalRef")
	e.deleteLocked("DeleteWeakGlobalRef", obj, kindWeak)
}

func (e *Env) IsSameObject(a, b jni.Object) bool {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("IsSameObject")
	return e.derefLocked("IsSameObject", a) == e.derefLocked("IsSameObject", b)
}

// MonitorEnter blocks while another environment holds the monitor.
func (e *Env) MonitorEnter(obj jni.Object) int32 {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("MonitorEnter")
	inst := e.derefLocked("MonitorEnter", obj)
	if inst == nil {
		e.throwLocked("java/lang/NullPointerException", "MonitorEnter")
		return -1
	}
	for inst.monitorOwner != nil && inst.monitorOwner != e {
		e.vm.cond.Wait()
	}
	inst.monitorOwner = e
	inst.monitorDepth++
	return 0
}

func (e *Env) MonitorExit(obj jni.Object) int32 {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("MonitorExit")
	inst := e.derefLocked("MonitorExit", obj)
	if inst == nil || inst.monitorOwner != e {
		e.throwLocked("java/lang/IllegalMonitorStateException", "current thread is not owner")
		return -1
	}
	inst.monitorDepth--
	if inst.monitorDepth == 0 {
		inst.monitorOwner = nil
		e.vm.cond.Broadcast()
	}
	return 0
}

func (e *Env) NewStringUTF(s string) jni.Object {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("NewStringUTF")
	inst := e.vm.newInstanceLocked(e.vm.classes["java/lang/String"], s)
	return e.vm.newRefLocked(inst, kindLocal, e)
}

func (e *Env) GetStringUTF(str jni.Object) string {
	e.vm.mu.Lock()
	defer e.vm.mu.Unlock()
	e.recordLocked("GetStringUTF")
	inst := e.derefLocked("GetStringUTF", str)
	if inst == nil {
		e.vm.misuseLocked("GetStringUTF: null string")
		return ""
	}
	s, ok := inst.Value.(string)
	if !ok {
		e.vm.misuseLocked("GetStringUTF: %s is not a string", inst.Class.Name)
	}
	return s
}
