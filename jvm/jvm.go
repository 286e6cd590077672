//go:build jvm && cgo && (amd64 || arm64 || 386 || arm || riscv64 || ppc64le || loong64 || mips64le || mipsle)

package jvm

/*
#cgo LDFLAGS: -ljvm

#include <jni.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

#define H(x) ((jobject)(uintptr_t)(x))
#define M(x) ((jmethodID)(uintptr_t)(x))

static jint go_CreateJavaVM(JavaVM **vm, JNIEnv **env, jint version, JavaVMOption *options, jint n, jboolean ignore) {
	JavaVMInitArgs args;
	args.version = version;
	args.nOptions = n;
	args.options = options;
	args.ignoreUnrecognized = ignore;
	return JNI_CreateJavaVM(vm, (void **)env, &args);
}

static jint go_DestroyJavaVM(JavaVM *vm) { return (*vm)->DestroyJavaVM(vm); }
static jint go_AttachCurrentThread(JavaVM *vm, JNIEnv **env) { return (*vm)->AttachCurrentThread(vm, (void **)env, NULL); }
static jint go_DetachCurrentThread(JavaVM *vm) { return (*vm)->DetachCurrentThread(vm); }
static jint go_GetEnv(JavaVM *vm, JNIEnv **env, jint version) { return (*vm)->GetEnv(vm, (void **)env, version); }

static uintptr_t go_FindClass(JNIEnv *e, const char *name) { return (uintptr_t)(*e)->FindClass(e, name); }
static uintptr_t go_GetObjectClass(JNIEnv *e, uintptr_t o) { return (uintptr_t)(*e)->GetObjectClass(e, H(o)); }
static uintptr_t go_GetMethodID(JNIEnv *e, uintptr_t c, const char *n, const char *s) { return (uintptr_t)(*e)->GetMethodID(e, (jclass)H(c), n, s); }
static uintptr_t go_GetStaticMethodID(JNIEnv *e, uintptr_t c, const char *n, const char *s) { return (uintptr_t)(*e)->GetStaticMethodID(e, (jclass)H(c), n, s); }

static uintptr_t go_CallObjectMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (uintptr_t)(*e)->CallObjectMethodA(e, H(o), M(m), a); }
static jboolean go_CallBooleanMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (*e)->CallBooleanMethodA(e, H(o), M(m), a); }
static jbyte go_CallByteMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (*e)->CallByteMethodA(e, H(o), M(m), a); }
static jchar go_CallCharMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (*e)->CallCharMethodA(e, H(o), M(m), a); }
static jshort go_CallShortMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (*e)->CallShortMethodA(e, H(o), M(m), a); }
static jint go_CallIntMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (*e)->CallIntMethodA(e, H(o), M(m), a); }
static jlong go_CallLongMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (*e)->CallLongMethodA(e, H(o), M(m), a); }
static jfloat go_CallFloatMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (*e)->CallFloatMethodA(e, H(o), M(m), a); }
static jdouble go_CallDoubleMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { return (*e)->CallDoubleMethodA(e, H(o), M(m), a); }
static void go_CallVoidMethodA(JNIEnv *e, uintptr_t o, uintptr_t m, const jvalue *a) { (*e)->CallVoidMethodA(e, H(o), M(m), a); }

static uintptr_t go_CallStaticObjectMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (uintptr_t)(*e)->CallStaticObjectMethodA(e, (jclass)H(c), M(m), a); }
static jboolean go_CallStaticBooleanMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (*e)->CallStaticBooleanMethodA(e, (jclass)H(c), M(m), a); }
static jbyte go_CallStaticByteMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (*e)->CallStaticByteMethodA(e, (jclass)H(c), M(m), a); }
static jchar go_CallStaticCharMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (*e)->CallStaticCharMethodA(e, (jclass)H(c), M(m), a); }
static jshort go_CallStaticShortMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (*e)->CallStaticShortMethodA(e, (jclass)H(c), M(m), a); }
static jint go_CallStaticIntMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (*e)->CallStaticIntMethodA(e, (jclass)H(c), M(m), a); }
static jlong go_CallStaticLongMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (*e)->CallStaticLongMethodA(e, (jclass)H(c), M(m), a); }
static jfloat go_CallStaticFloatMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (*e)->CallStaticFloatMethodA(e, (jclass)H(c), M(m), a); }
static jdouble go_CallStaticDoubleMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { return (*e)->CallStaticDoubleMethodA(e, (jclass)H(c), M(m), a); }
static void go_CallStaticVoidMethodA(JNIEnv *e, uintptr_t c, uintptr_t m, const jvalue *a) { (*e)->CallStaticVoidMethodA(e, (jclass)H(c), M(m), a); }

static jboolean go_ExceptionCheck(JNIEnv *e) { return (*e)->ExceptionCheck(e); }
static uintptr_t go_ExceptionOccurred(JNIEnv *e) { return (uintptr_t)(*e)->ExceptionOccurred(e); }
static void go_ExceptionClear(JNIEnv *e) { (*e)->ExceptionClear(e); }

static uintptr_t go_NewLocalRef(JNIEnv *e, uintptr_t o) { return (uintptr_t)(*e)->NewLocalRef(e, H(o)); }
static void go_DeleteLocalRef(JNIEnv *e, uintptr_t o) { (*e)->DeleteLocalRef(e, H(o)); }
static uintptr_t go_NewGlobalRef(JNIEnv *e, uintptr_t o) { return (uintptr_t)(*e)->NewGlobalRef(e, H(o)); }
static void go_DeleteGlobalRef(JNIEnv *e, uintptr_t o) { (*e)->DeleteGlobalRef(e, H(o)); }
static uintptr_t go_NewWeakGlobalRef(JNIEnv *e, uintptr_t o) { return (uintptr_t)(*e)->NewWeakGlobalRef(e, H(o)); }
static void go_DeleteWeakGlobalRef(JNIEnv *e, uintptr_t o) { (*e)->DeleteWeakGlobalRef(e, (jweak)H(o)); }
static jboolean go_IsSameObject(JNIEnv *e, uintptr_t a, uintptr_t b) { return (*e)->IsSameObject(e, H(a), H(b)); }

static jint go_MonitorEnter(JNIEnv *e, uintptr_t o) { return (*e)->MonitorEnter(e, H(o)); }
static jint go_MonitorExit(JNIEnv *e, uintptr_t o) { return (*e)->MonitorExit(e, H(o)); }

static uintptr_t go_NewStringUTF(JNIEnv *e, const char *s) { return (uintptr_t)(*e)->NewStringUTF(e, s); }

static char *go_GetStringUTF(JNIEnv *e, uintptr_t s, jsize *n) {
	const char *chars = (*e)->GetStringUTFChars(e, (jstring)H(s), NULL);
	if (chars == NULL) {
		return NULL;
	}
	*n = (*e)->GetStringUTFLength(e, (jstring)H(s));
	char *out = malloc(*n);
	if (out != NULL) {
		memcpy(out, chars, *n);
	}
	(*e)->ReleaseStringUTFChars(e, (jstring)H(s), chars);
	return out;
}
*/
import "C"

import (
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
)

// VM is a Java VM created in this process. JNI allows only one per process,
// and it cannot be recreated after Destroy.
type VM struct {
	vm      *C.JavaVM
	version C.jint
	mu      sync.Mutex
	closed  bool
}

// Env is an attached thread's JNI function table. It implements jni.Env and
// is only valid on the OS thread that obtained it.
type Env struct {
	env *C.JNIEnv
}

var _ jni.Env = (*Env)(nil)

// Create starts a VM with opts. The calling goroutine is locked to its OS
// thread, which becomes the VM's main thread; the returned Env belongs to it.
// Call Destroy from the same goroutine to shut down and unlock.
func Create(opts Options) (*VM, *Env, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	version, _ := opts.VersionCode()
	args := opts.Args()

	var coptions *C.JavaVMOption
	if len(args) > 0 {
		coptions = (*C.JavaVMOption)(C.calloc(C.size_t(len(args)), C.size_t(unsafe.Sizeof(C.JavaVMOption{}))))
		defer C.free(unsafe.Pointer(coptions))
		slots := unsafe.Slice(coptions, len(args))
		for i, arg := range args {
			cs := C.CString(arg)
			defer C.free(unsafe.Pointer(cs))
			slots[i].optionString = cs
		}
	}

	var ignore C.jboolean
	if opts.IgnoreUnrecognized {
		ignore = C.JNI_TRUE
	}

	runtime.LockOSThread()
	var vm *C.JavaVM
	var env *C.JNIEnv
	status := C.go_CreateJavaVM(&vm, &env, C.jint(version), coptions, C.jint(len(args)), ignore)
	if status != C.JNI_OK {
		runtime.UnlockOSThread()
		return nil, nil, errors.Attach("JNI_CreateJavaVM", int32(status))
	}

	Logger().Debug("vm created", zap.Strings("options", args), zap.String("version", opts.Version))
	return &VM{vm: vm, version: C.jint(version)}, &Env{env: env}, nil
}

// Attach attaches the calling goroutine's OS thread to the VM and locks the
// goroutine to it. The returned detach function undoes both; call it from the
// same goroutine. A thread that is already attached gets its existing Env
// and a detach that only unlocks. After Destroy, Attach fails with
// KindNotInitialized.
func (vm *VM) Attach() (*Env, func(), error) {
	vm.mu.Lock()
	closed := vm.closed
	vm.mu.Unlock()
	if closed {
		return nil, nil, errors.NotInitialized(errors.PhaseAttach, "java vm")
	}

	runtime.LockOSThread()

	var env *C.JNIEnv
	if C.go_GetEnv(vm.vm, &env, vm.version) == C.JNI_OK {
		return &Env{env: env}, runtime.UnlockOSThread, nil
	}
	if status := C.go_AttachCurrentThread(vm.vm, &env); status != C.JNI_OK {
		runtime.UnlockOSThread()
		return nil, nil, errors.Attach("AttachCurrentThread", int32(status))
	}
	Logger().Debug("thread attached")

	detach := func() {
		if status := C.go_DetachCurrentThread(vm.vm); status != C.JNI_OK {
			Logger().Warn("detach failed", zap.Int32("status", int32(status)))
		} else {
			Logger().Debug("thread detached")
		}
		runtime.UnlockOSThread()
	}
	return &Env{env: env}, detach, nil
}

// Do runs fn on an attached thread.
func (vm *VM) Do(fn func(env *Env) error) error {
	env, detach, err := vm.Attach()
	if err != nil {
		return err
	}
	defer detach()
	return fn(env)
}

// Destroy unloads the VM and unlocks the calling goroutine from its thread.
// Later calls are no-ops.
func (vm *VM) Destroy() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.closed {
		return nil
	}
	vm.closed = true
	defer runtime.UnlockOSThread()
	if status := C.go_DestroyJavaVM(vm.vm); status != C.JNI_OK {
		return errors.Attach("DestroyJavaVM", int32(status))
	}
	Logger().Debug("vm destroyed")
	return nil
}

func h(o jni.Object) C.uintptr_t { return C.uintptr_t(o) }

func mid(id jni.MethodID) C.uintptr_t { return C.uintptr_t(id) }

// argv passes the Value slice as a jvalue array. Value and jvalue share size
// and layout.
func argv(args []jni.Value) *C.jvalue {
	if len(args) == 0 {
		return nil
	}
	return (*C.jvalue)(unsafe.Pointer(&args[0]))
}

func jbool(b C.jboolean) bool { return b != C.JNI_FALSE }

func (e *Env) FindClass(name string) jni.Class {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return jni.Class(C.go_FindClass(e.env, cs))
}

func (e *Env) GetObjectClass(obj jni.Object) jni.Class {
	return jni.Class(C.go_GetObjectClass(e.env, h(obj)))
}

func (e *Env) GetMethodID(cls jni.Class, name, sig string) jni.MethodID {
	cn, cs := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cn))
	defer C.free(unsafe.Pointer(cs))
	return jni.MethodID(C.go_GetMethodID(e.env, h(jni.Object(cls)), cn, cs))
}

func (e *Env) GetStaticMethodID(cls jni.Class, name, sig string) jni.MethodID {
	cn, cs := C.CString(name), C.CString(sig)
	defer C.free(unsafe.Pointer(cn))
	defer C.free(unsafe.Pointer(cs))
	return jni.MethodID(C.go_GetStaticMethodID(e.env, h(jni.Object(cls)), cn, cs))
}

func (e *Env) CallObjectMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) jni.Object {
	return jni.Object(C.go_CallObjectMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallBooleanMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) bool {
	return jbool(C.go_CallBooleanMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallByteMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) int8 {
	return int8(C.go_CallByteMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallCharMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) uint16 {
	return uint16(C.go_CallCharMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallShortMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) int16 {
	return int16(C.go_CallShortMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallIntMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) int32 {
	return int32(C.go_CallIntMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallLongMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) int64 {
	return int64(C.go_CallLongMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallFloatMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) float32 {
	return float32(C.go_CallFloatMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallDoubleMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) float64 {
	return float64(C.go_CallDoubleMethodA(e.env, h(obj), mid(id), argv(args)))
}

func (e *Env) CallVoidMethodA(obj jni.Object, id jni.MethodID, args []jni.Value) {
	C.go_CallVoidMethodA(e.env, h(obj), mid(id), argv(args))
}

func (e *Env) CallStaticObjectMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) jni.Object {
	return jni.Object(C.go_CallStaticObjectMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticBooleanMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) bool {
	return jbool(C.go_CallStaticBooleanMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticByteMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) int8 {
	return int8(C.go_CallStaticByteMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticCharMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) uint16 {
	return uint16(C.go_CallStaticCharMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticShortMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) int16 {
	return int16(C.go_CallStaticShortMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticIntMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) int32 {
	return int32(C.go_CallStaticIntMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticLongMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) int64 {
	return int64(C.go_CallStaticLongMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticFloatMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) float32 {
	return float32(C.go_CallStaticFloatMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticDoubleMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) float64 {
	return float64(C.go_CallStaticDoubleMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args)))
}

func (e *Env) CallStaticVoidMethodA(cls jni.Class, id jni.MethodID, args []jni.Value) {
	C.go_CallStaticVoidMethodA(e.env, h(jni.Object(cls)), mid(id), argv(args))
}

func (e *Env) ExceptionCheck() bool { return jbool(C.go_ExceptionCheck(e.env)) }

func (e *Env) ExceptionOccurred() jni.Object { return jni.Object(C.go_ExceptionOccurred(e.env)) }

func (e *Env) ExceptionClear() { C.go_ExceptionClear(e.env) }

func (e *Env) NewLocalRef(obj jni.Object) jni.Object {
	return jni.Object(C.go_NewLocalRef(e.env, h(obj)))
}

func (e *Env) DeleteLocalRef(obj jni.Object) { C.go_DeleteLocalRef(e.env, h(obj)) }

func (e *Env) NewGlobalRef(obj jni.Object) jni.Object {
	return jni.Object(C.go_NewGlobalRef(e.env, h(obj)))
}

func (e *Env) DeleteGlobalRef(obj jni.Object) { C.go_DeleteGlobalRef(e.env, h(obj)) }

func (e *Env) NewWeakGlobalRef(obj jni.Object) jni.Object {
	return jni.Object(C.go_NewWeakGlobalRef(e.env, h(obj)))
}

func (e *Env) DeleteWeakGlobalRef(obj jni.Object) { C.go_DeleteWeakGlobalRef(e.env, h(obj)) }

func (e *Env) IsSameObject(a, b jni.Object) bool {
	return jbool(C.go_IsSameObject(e.env, h(a), h(b)))
}

func (e *Env) MonitorEnter(obj jni.Object) int32 { return int32(C.go_MonitorEnter(e.env, h(obj))) }

func (e *Env) MonitorExit(obj jni.Object) int32 { return int32(C.go_MonitorExit(e.env, h(obj))) }

// NewStringUTF converts s to modified UTF-8, so embedded NULs and
// supplementary characters survive.
func (e *Env) NewStringUTF(s string) jni.Object {
	cs := (*C.char)(C.CBytes(append(encodeModifiedUTF8(s), 0)))
	defer C.free(unsafe.Pointer(cs))
	return jni.Object(C.go_NewStringUTF(e.env, cs))
}

func (e *Env) GetStringUTF(str jni.Object) string {
	var n C.jsize
	chars := C.go_GetStringUTF(e.env, h(str), &n)
	if chars == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(chars))
	return decodeModifiedUTF8(C.GoBytes(unsafe.Pointer(chars), C.int(n)))
}
