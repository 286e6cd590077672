// Package lang wraps the java.lang classes every JNI program touches:
// Object, Class, String, Throwable, and the intrinsic object monitor.
//
// Method IDs are resolved lazily through a Cache, an explicit context
// object shared by all callers:
//
//	cache := lang.NewCache()
//	defer cache.Release(env)
//
//	cls, err := cache.ForName(env, "java/util/ArrayList")
//	if err != nil {
//	    return err
//	}
//	defer cls.Release(env)
//
//	name, err := cls.GetName(env) // "java.util.ArrayList"
//
// Each class table is resolved once, on first use, no matter how many
// goroutines race for it. A failed resolution is not remembered; the next
// caller tries again.
//
// # Exceptions
//
// A Java exception raised by a method of this package comes back as a
// *Throwable holding the class name and message. The throwable reference is
// released before the method returns, so errors may be passed up freely.
// Unwrap reaches the exception error of the core package, and whatever error
// wrapped it, such as a class-not-found error.
//
// The core package's Call leaves the throwable attached; Cache.Describe
// converts such errors the same way.
//
// # Class methods
//
// Raw gives the handle the core package resolves against:
//
//	cls, err := cache.ForName(env, "java/lang/Integer")
//	if err != nil {
//	    return err
//	}
//	defer cls.Release(env)
//
//	parse, err := jni.ResolveStaticMethod1[jni.Int, *ref.Local[jni.StringRef]](env, cls.Raw(), "parseInt")
//	if err != nil {
//	    return cache.Describe(env, err)
//	}
//	n, err := parse.Call(env, cls, s)
package lang
