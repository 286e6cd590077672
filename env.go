package jni

// Env is the per-thread JNI function table.
//
// Implementations forward each method to the JNIEnv function of the same
// name. None of the methods check for pending exceptions; callers use
// CheckException, which the dispatcher does after every call.
type Env interface {
	FindClass(name string) Class
	GetObjectClass(obj Object) Class
	GetMethodID(cls Class, name, sig string) MethodID
	GetStaticMethodID(cls Class, name, sig string) MethodID

	CallObjectMethodA(obj Object, id MethodID, args []Value) Object
	CallBooleanMethodA(obj Object, id MethodID, args []Value) bool
	CallByteMethodA(obj Object, id MethodID, args []Value) int8
	CallCharMethodA(obj Object, id MethodID, args []Value) uint16
	CallShortMethodA(obj Object, id MethodID, args []Value) int16
	CallIntMethodA(obj Object, id MethodID, args []Value) int32
	CallLongMethodA(obj Object, id MethodID, args []Value) int64
	CallFloatMethodA(obj Object, id MethodID, args []Value) float32
	CallDoubleMethodA(obj Object, id MethodID, args []Value) float64
	CallVoidMethodA(obj Object, id MethodID, args []Value)

	CallStaticObjectMethodA(cls Class, id MethodID, args []Value) Object
	CallStaticBooleanMethodA(cls Class, id MethodID, args []Value) bool
	CallStaticByteMethodA(cls Class, id MethodID, args []Value) int8
	CallStaticCharMethodA(cls Class, id MethodID, args []Value) uint16
	CallStaticShortMethodA(cls Class, id MethodID, args []Value) int16
	CallStaticIntMethodA(cls Class, id MethodID, args []Value) int32
	CallStaticLongMethodA(cls Class, id MethodID, args []Value) int64
	CallStaticFloatMethodA(cls Class, id MethodID, args []Value) float32
	CallStaticDoubleMethodA(cls Class, id MethodID, args []Value) float64
	CallStaticVoidMethodA(cls Class, id MethodID, args []Value)

	ExceptionCheck() bool
	ExceptionOccurred() Object
	ExceptionClear()

	NewLocalRef(obj Object) Object
	DeleteLocalRef(obj Object)
	NewGlobalRef(obj Object) Object
	DeleteGlobalRef(obj Object)
	NewWeakGlobalRef(obj Object) Object
	DeleteWeakGlobalRef(obj Object)
	IsSameObject(a, b Object) bool

	MonitorEnter(obj Object) int32
	MonitorExit(obj Object) int32

	NewStringUTF(s string) Object
	// GetStringUTF copies the modified UTF-8 contents of a java.lang.String.
	GetStringUTF(str Object) string
}

// Referent is anything that can stand in for an object handle at a call site:
// raw handles, owned references and convenience wrappers.
type Referent interface {
	Handle() Object
}
