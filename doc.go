// Package jni provides statically typed method calls over the JNI reflective
// call interface.
//
// The JNI call table is return-category polymorphic: one primitive per return
// kind (CallIntMethodA, CallObjectMethodA, ...), untyped jvalue argument
// packs, and failure reported out of band through the pending-exception flag.
// This package reconciles that with Go's static types.
//
// # Architecture Overview
//
//	jni/              Env contract, Value, handles, descriptors, dispatcher, method handles
//	├── ref/          Local, Global and Weak reference ownership types
//	├── lang/         java.lang convenience layer (Object, Class, String, Throwable, Monitor)
//	├── jnitest/      Instrumented in-process mock VM for tests
//	├── jvm/          Real JVM binding (cgo, build tag "jvm") and VM options
//	├── classfile/    .class file reader for tooling
//	├── errors/       Structured error types
//	└── cmd/jnigen/   Binding generator and class browser
//
// # Quick Start
//
// Resolve a method once, call it many times:
//
//	m, err := jni.ResolveStaticMethod1[jni.Int, jni.Int](env, cls, "staticIntMethod")
//	if err != nil {
//	    return err
//	}
//	v, err := m.Call(env, cls, 42)
//
// The descriptor "(I)I" is derived from the type parameters. Object results
// come back as owned local references:
//
//	toString, _ := jni.ResolveMethod0[*ref.Local[jni.StringRef]](env, objCls, "toString")
//	s, err := toString.Call(env, obj)
//	if err != nil {
//	    return err
//	}
//	defer s.Release()
//
// # Exceptions
//
// Every call primitive is followed by an exception check. A pending Java
// exception is cleared and returned as an *errors.Error of kind
// errors.KindException; the result value is never produced in that case.
//
// # Thread Safety
//
// An Env is bound to one OS thread and must not be shared. Method handles are
// immutable values and may be shared freely. Global references may be used
// from any thread; local references belong to the Env that created them.
package jni
