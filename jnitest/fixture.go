package jnitest

import (
	"strconv"
	"strings"

	jni "github.com/wippyai/go-jni"
)

// MethodTestClass is the binary name of the fixture class defined by
// DefineMethodTest.
const MethodTestClass = "MethodTest"

var identityKinds = []struct {
	name string
	desc string
}{
	{"Boolean", "Z"},
	{"Byte", "B"},
	{"Char", "C"},
	{"Short", "S"},
	{"Int", "I"},
	{"Long", "J"},
	{"Float", "F"},
	{"Double", "D"},
}

// DefineMethodTest defines the MethodTest fixture class:
//
//   - static<Kind>Method and <kind>Method for every scalar kind, returning
//     their argument unchanged
//   - staticStringMethod / stringMethod, returning their String argument
//   - staticIntArrayMethod, returning its int[] argument
//   - staticVoidMethod / voidMethod, counting invocations in the returned
//     counter
//   - staticThrowingMethod()V and throwingIntMethod()I, raising
//     java/lang/RuntimeException("boom")
//   - concat(Ljava/lang/String;I)Ljava/lang/String;
//   - sum6(IIIIII)J, static, adding all six arguments
//   - newObject()Ljava/lang/Object;, static, returning a fresh MethodTest
func (vm *VM) DefineMethodTest() (*Class, *int) {
	voids := new(int)
	identity := func(c *Call) jni.Value { return c.Args[0] }
	objIdentity := func(c *Call) jni.Value { return c.Return(c.Object(0)) }
	boom := func(c *Call) jni.Value { return c.Throw("java/lang/RuntimeException", "boom") }
	countVoid := func(c *Call) jni.Value {
		c.Env.vm.mu.Lock()
		*voids++
		c.Env.vm.mu.Unlock()
		return 0
	}

	cls := vm.DefineClass(MethodTestClass, "")
	for _, k := range identityKinds {
		sig := "(" + k.desc + ")" + k.desc
		lower := strings.ToLower(k.name[:1]) + k.name[1:]
		cls.StaticMethod("static"+k.name+"Method", sig, identity)
		cls.Method(lower+"Method", sig, identity)
	}

	cls.
		StaticMethod("staticStringMethod", "(Ljava/lang/String;)Ljava/lang/String;", objIdentity).
		Method("stringMethod", "(Ljava/lang/String;)Ljava/lang/String;", objIdentity).
		StaticMethod("staticIntArrayMethod", "([I)[I", objIdentity).
		StaticMethod("staticVoidMethod", "()V", countVoid).
		Method("voidMethod", "()V", countVoid).
		StaticMethod("staticThrowingMethod", "()V", boom).
		Method("throwingIntMethod", "()I", boom).
		StaticMethod("concat", "(Ljava/lang/String;I)Ljava/lang/String;", func(c *Call) jni.Value {
			return c.ReturnString(c.String(0) + strconv.Itoa(int(c.Args[1].Int())))
		}).
		StaticMethod("sum6", "(IIIIII)J", func(c *Call) jni.Value {
			var sum int64
			for _, a := range c.Args {
				sum += int64(a.Int())
			}
			return jni.LongValue(sum)
		}).
		StaticMethod("newObject", "()Ljava/lang/Object;", func(c *Call) jni.Value {
			return c.Return(vm.New(MethodTestClass, nil))
		})

	return cls, voids
}
