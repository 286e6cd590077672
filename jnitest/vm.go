package jnitest

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	jni "github.com/wippyai/go-jni"
)

type refKind uint8

const (
	kindLocal refKind = iota + 1
	kindGlobal
	kindWeak
)

func (k refKind) String() string {
	switch k {
	case kindLocal:
		return "local"
	case kindGlobal:
		return "global"
	case kindWeak:
		return "weak"
	}
	return "invalid"
}

// Instance is a heap object of the mock VM.
type Instance struct {
	Class *Class
	// Value carries the payload of built-in types: the Go string of a
	// java.lang.String, the message of a Throwable, the *Class of a
	// java.lang.Class.
	Value any

	id           uint64
	collected    bool
	monitorOwner *Env
	monitorDepth int
	notifies     int
	notifyAlls   int
	waits        []time.Duration
}

// ID returns the identity hash of the instance.
func (i *Instance) ID() uint64 { return i.id }

// Func implements a mock method body.
type Func func(c *Call) jni.Value

// Method is a mock method slot. Its address in VM.methods is its MethodID.
type Method struct {
	Class      *Class
	Name       string
	Descriptor string
	Static     bool
	Fn         Func
	id         jni.MethodID
}

// returnKind maps the return descriptor to the call primitive family:
// 'L' covers objects and arrays.
func (m *Method) returnKind() byte {
	ret := m.Descriptor[strings.IndexByte(m.Descriptor, ')')+1:]
	switch ret[0] {
	case '[':
		return 'L'
	default:
		return ret[0]
	}
}

// Class is a mock class.
type Class struct {
	Name    string
	Super   *Class
	Object  *Instance
	methods map[string]*Method
	vm      *VM
}

// Method defines an instance method.
func (c *Class) Method(name, desc string, fn Func) *Class {
	c.vm.defineMethod(c, name, desc, false, fn)
	return c
}

// StaticMethod defines a static method.
func (c *Class) StaticMethod(name, desc string, fn Func) *Class {
	c.vm.defineMethod(c, name, desc, true, fn)
	return c
}

// IsSubclassOf reports whether c is other or extends it.
func (c *Class) IsSubclassOf(other *Class) bool {
	for k := c; k != nil; k = k.Super {
		if k == other {
			return true
		}
	}
	return false
}

func (c *Class) lookup(name, desc string, static bool) *Method {
	for k := c; k != nil; k = k.Super {
		if m, ok := k.methods[name+desc]; ok && m.Static == static {
			return m
		}
	}
	return nil
}

type refEntry struct {
	inst    *Instance
	owner   *Env
	kind    refKind
	live    bool
	deletes int
}

// VM is an in-process stand-in for a Java VM. It implements enough of the
// JNI contract to exercise typed dispatch, reference ownership and exception
// handling, and records every contract violation as a misuse.
//
// Handles are never reused, so a double delete or use-after-delete is always
// detected.
type VM struct {
	mu       sync.Mutex
	cond     *sync.Cond
	classes  map[string]*Class
	methods  []*Method
	refs     []refEntry
	nextID   uint64
	misuses  []string
	classCls *Class
}

// NewVM creates a VM with the java.lang core classes defined.
func NewVM() *VM {
	vm := &VM{
		classes: make(map[string]*Class),
	}
	vm.cond = sync.NewCond(&vm.mu)
	defineBuiltins(vm)
	return vm
}

// NewEnv returns the environment of a new mock thread.
func (vm *VM) NewEnv() *Env {
	return &Env{
		vm:    vm,
		calls: make(map[string]int),
	}
}

// DefineClass defines a class extending super ("" means java/lang/Object).
// Defining an existing name returns the existing class.
func (vm *VM) DefineClass(name, super string) *Class {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.defineClassLocked(name, super)
}

func (vm *VM) defineClassLocked(name, super string) *Class {
	if c, ok := vm.classes[name]; ok {
		return c
	}
	var sc *Class
	if name != "java/lang/Object" {
		if super == "" {
			super = "java/lang/Object"
		}
		sc = vm.defineClassLocked(super, "")
	}
	c := &Class{
		Name:    name,
		Super:   sc,
		methods: make(map[string]*Method),
		vm:      vm,
	}
	vm.classes[name] = c
	c.Object = vm.newInstanceLocked(vm.classCls, c)
	return c
}

// Class returns a defined class or nil.
func (vm *VM) Class(name string) *Class {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.classes[name]
}

func (vm *VM) defineMethod(c *Class, name, desc string, static bool, fn Func) {
	if _, _, err := jni.ParseMethodDescriptor(desc); err != nil {
		panic(fmt.Sprintf("jnitest: %s.%s: %v", c.Name, name, err))
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	m := &Method{
		Class:      c,
		Name:       name,
		Descriptor: desc,
		Static:     static,
		Fn:         fn,
		id:         jni.MethodID(len(vm.methods) + 1),
	}
	vm.methods = append(vm.methods, m)
	c.methods[name+desc] = m
}

// New allocates an instance of a defined class.
func (vm *VM) New(className string, value any) *Instance {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	c := vm.classes[className]
	if c == nil {
		panic("jnitest: class not defined: " + className)
	}
	return vm.newInstanceLocked(c, value)
}

func (vm *VM) newInstanceLocked(c *Class, value any) *Instance {
	vm.nextID++
	return &Instance{Class: c, Value: value, id: vm.nextID}
}

// Collect simulates garbage collection of inst. It fails while any local or
// global reference still holds the object.
func (vm *VM) Collect(inst *Instance) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for _, r := range vm.refs {
		if r.live && r.inst == inst && r.kind != kindWeak {
			return false
		}
	}
	inst.collected = true
	return true
}

// Method returns the slot behind a method id, or nil.
func (vm *VM) Method(id jni.MethodID) *Method {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.methodLocked(id)
}

func (vm *VM) methodLocked(id jni.MethodID) *Method {
	idx := int(id) - 1
	if idx < 0 || idx >= len(vm.methods) {
		return nil
	}
	return vm.methods[idx]
}

func (vm *VM) newRefLocked(inst *Instance, kind refKind, owner *Env) jni.Object {
	if inst == nil {
		return jni.Null
	}
	vm.refs = append(vm.refs, refEntry{inst: inst, kind: kind, owner: owner, live: true})
	return jni.Object(len(vm.refs))
}

func (vm *VM) misuseLocked(format string, args ...any) {
	vm.misuses = append(vm.misuses, fmt.Sprintf(format, args...))
}

// Misuses returns every JNI contract violation observed so far.
func (vm *VM) Misuses() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]string(nil), vm.misuses...)
}

// Verify reports every recorded misuse as a test error.
func (vm *VM) Verify(t testing.TB) {
	t.Helper()
	for _, m := range vm.Misuses() {
		t.Errorf("jni misuse: %s", m)
	}
}

func (vm *VM) liveLocked(kind refKind, owner *Env) int {
	n := 0
	for _, r := range vm.refs {
		if r.live && r.kind == kind && (owner == nil || r.owner == owner) {
			n++
		}
	}
	return n
}

// LiveLocals counts live local references across all environments.
func (vm *VM) LiveLocals() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.liveLocked(kindLocal, nil)
}

// LiveGlobals counts live global references.
func (vm *VM) LiveGlobals() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.liveLocked(kindGlobal, nil)
}

// LiveWeaks counts live weak global references.
func (vm *VM) LiveWeaks() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.liveLocked(kindWeak, nil)
}

// Deletes returns how many times the handle was deleted.
func (vm *VM) Deletes(obj jni.Object) int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	idx := int(obj) - 1
	if idx < 0 || idx >= len(vm.refs) {
		return 0
	}
	return vm.refs[idx].deletes
}

// Notifies returns how many times notify() ran on inst.
func (vm *VM) Notifies(inst *Instance) int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return inst.notifies
}

// NotifyAlls returns how many times notifyAll() ran on inst.
func (vm *VM) NotifyAlls(inst *Instance) int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return inst.notifyAlls
}

// Waits returns the timeouts of every wait() on inst; 0 means no timeout.
func (vm *VM) Waits(inst *Instance) []time.Duration {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return append([]time.Duration(nil), inst.waits...)
}

// MonitorDepth returns the recursion count of inst's monitor.
func (vm *VM) MonitorDepth(inst *Instance) int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return inst.monitorDepth
}
