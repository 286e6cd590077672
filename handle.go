package jni

import "fmt"

// Object is an opaque JNI object handle (jobject). Only comparison and null
// checks are meaningful on the Go side.
type Object uintptr

// Class is a handle to a java.lang.Class instance (jclass).
type Class Object

// MethodID is an opaque resolved method slot (jmethodID). Zero means unresolved.
type MethodID uintptr

// Null is the null object handle.
const Null Object = 0

// IsNull reports whether o is the null handle.
func (o Object) IsNull() bool { return o == 0 }

// Handle implements Referent.
func (o Object) Handle() Object { return o }

// Descriptor lets raw handles be passed where java.lang.Object is expected.
func (Object) Descriptor() string { return "Ljava/lang/Object;" }

// Value implements Arg.
func (o Object) Value() Value { return ObjectValue(o) }

func (o Object) String() string { return fmt.Sprintf("Object(0x%x)", uintptr(o)) }

// IsNull reports whether c is the null handle.
func (c Class) IsNull() bool { return c == 0 }

// Handle implements Referent.
func (c Class) Handle() Object { return Object(c) }

// Descriptor implements Type.
func (Class) Descriptor() string { return "Ljava/lang/Class;" }

// Value implements Arg.
func (c Class) Value() Value { return ObjectValue(Object(c)) }

func (c Class) String() string { return fmt.Sprintf("Class(0x%x)", uintptr(c)) }

// IsNull reports whether id is unresolved.
func (id MethodID) IsNull() bool { return id == 0 }

func (id MethodID) String() string { return fmt.Sprintf("MethodID(0x%x)", uintptr(id)) }
