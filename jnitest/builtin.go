package jnitest

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	jni "github.com/wippyai/go-jni"
)

var throwables = [][2]string{
	{"java/lang/Exception", "java/lang/Throwable"},
	{"java/lang/Error", "java/lang/Throwable"},
	{"java/lang/RuntimeException", "java/lang/Exception"},
	{"java/lang/InterruptedException", "java/lang/Exception"},
	{"java/lang/NullPointerException", "java/lang/RuntimeException"},
	{"java/lang/IllegalArgumentException", "java/lang/RuntimeException"},
	{"java/lang/IllegalMonitorStateException", "java/lang/RuntimeException"},
	{"java/lang/LinkageError", "java/lang/Error"},
	{"java/lang/NoClassDefFoundError", "java/lang/LinkageError"},
	{"java/lang/IncompatibleClassChangeError", "java/lang/LinkageError"},
	{"java/lang/NoSuchMethodError", "java/lang/IncompatibleClassChangeError"},
}

func defineBuiltins(vm *VM) {
	vm.mu.Lock()
	object := vm.defineClassLocked("java/lang/Object", "")
	class := vm.defineClassLocked("java/lang/Class", "")
	vm.classCls = class
	object.Object.Class = class
	class.Object.Class = class
	vm.defineClassLocked("java/lang/String", "")
	vm.defineClassLocked("java/lang/Throwable", "")
	for _, t := range throwables {
		vm.defineClassLocked(t[0], t[1])
	}
	vm.mu.Unlock()

	object.
		Method("hashCode", "()I", func(c *Call) jni.Value {
			return jni.IntValue(int32(c.This.id))
		}).
		Method("equals", "(Ljava/lang/Object;)Z", func(c *Call) jni.Value {
			return jni.BooleanValue(c.Object(0) == c.This)
		}).
		Method("toString", "()Ljava/lang/String;", func(c *Call) jni.Value {
			name := strings.ReplaceAll(c.This.Class.Name, "/", ".")
			return c.ReturnString(fmt.Sprintf("%s@%x", name, uint32(c.This.id)))
		}).
		Method("getClass", "()Ljava/lang/Class;", func(c *Call) jni.Value {
			return c.Return(c.This.Class.Object)
		}).
		Method("notify", "()V", func(c *Call) jni.Value {
			if !c.HoldsMonitor() {
				return c.Throw("java/lang/IllegalMonitorStateException", "current thread is not owner")
			}
			c.Env.vm.mu.Lock()
			c.This.notifies++
			c.Env.vm.mu.Unlock()
			return 0
		}).
		Method("notifyAll", "()V", func(c *Call) jni.Value {
			if !c.HoldsMonitor() {
				return c.Throw("java/lang/IllegalMonitorStateException", "current thread is not owner")
			}
			c.Env.vm.mu.Lock()
			c.This.notifyAlls++
			c.Env.vm.mu.Unlock()
			return 0
		}).
		Method("wait", "()V", func(c *Call) jni.Value {
			return wait(c, 0, 0)
		}).
		Method("wait", "(J)V", func(c *Call) jni.Value {
			return wait(c, c.Args[0].Long(), 0)
		}).
		Method("wait", "(JI)V", func(c *Call) jni.Value {
			return wait(c, c.Args[0].Long(), c.Args[1].Int())
		})

	class.Method("getName", "()Ljava/lang/String;", func(c *Call) jni.Value {
		k := c.This.Value.(*Class)
		return c.ReturnString(strings.ReplaceAll(k.Name, "/", "."))
	})

	vm.Class("java/lang/String").
		Method("length", "()I", func(c *Call) jni.Value {
			s, _ := c.This.Value.(string)
			return jni.IntValue(int32(len(utf16.Encode([]rune(s)))))
		}).
		Method("toString", "()Ljava/lang/String;", func(c *Call) jni.Value {
			return c.Return(c.This)
		})

	vm.Class("java/lang/Throwable").
		Method("getMessage", "()Ljava/lang/String;", func(c *Call) jni.Value {
			msg, _ := c.This.Value.(string)
			return c.ReturnString(msg)
		}).
		Method("toString", "()Ljava/lang/String;", func(c *Call) jni.Value {
			name := strings.ReplaceAll(c.This.Class.Name, "/", ".")
			if msg, _ := c.This.Value.(string); msg != "" {
				return c.ReturnString(name + ": " + msg)
			}
			return c.ReturnString(name)
		})
}

// wait validates its arguments like Object.wait and records the timeout. It
// never blocks.
func wait(c *Call, millis int64, nanos int32) jni.Value {
	if millis < 0 {
		return c.Throw("java/lang/IllegalArgumentException", "timeout value is negative")
	}
	if nanos < 0 || nanos > 999999 {
		return c.Throw("java/lang/IllegalArgumentException", "nanosecond timeout value out of range")
	}
	if !c.HoldsMonitor() {
		return c.Throw("java/lang/IllegalMonitorStateException", "current thread is not owner")
	}
	c.Env.vm.mu.Lock()
	c.This.waits = append(c.This.waits, time.Duration(millis)*time.Millisecond+time.Duration(nanos))
	c.Env.vm.mu.Unlock()
	return 0
}
