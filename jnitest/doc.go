// Package jnitest provides an instrumented in-process mock of the JNI
// function table for tests.
//
// A VM holds classes, instances and the reference table; each Env is one mock
// thread and implements jni.Env:
//
//	vm := jnitest.NewVM()
//	env := vm.NewEnv()
//	cls, _ := vm.DefineMethodTest()
//	defer vm.Verify(t)
//
// Classes are defined with Go method bodies:
//
//	vm.DefineClass("com/example/Counter", "").
//	    Method("next", "()I", func(c *jnitest.Call) jni.Value {
//	        return jni.IntValue(42)
//	    })
//
// # Probes
//
// Every JNI function invoked through an Env is counted (Env.Calls). The VM
// tracks live local, global and weak references (LiveLocals, LiveGlobals,
// LiveWeaks) and how often each handle was deleted (Deletes). Contract
// violations are recorded instead of crashing: calling a function while an
// exception is pending, using or deleting a released reference, using a
// local from another Env, calling a primitive whose return kind does not
// match the method. VM.Verify turns them into test errors.
//
// Object.wait in the mock validates its arguments and records the timeout but
// never blocks. MonitorEnter does block while another Env holds the monitor.
package jnitest
