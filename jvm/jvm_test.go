//go:build jvm && cgo && (amd64 || arm64 || 386 || arm || riscv64 || ppc64le || loong64 || mips64le || mipsle)

package jvm_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	jni "github.com/wippyai/go-jni"
	jerrors "github.com/wippyai/go-jni/errors"
	"github.com/wippyai/go-jni/jvm"
	"github.com/wippyai/go-jni/lang"
	"github.com/wippyai/go-jni/ref"
)

var (
	vm    *jvm.VM
	env   *jvm.Env
	cache = lang.NewCache()
)

// TestMain keeps the VM's main thread on the test binary's main goroutine.
func TestMain(m *testing.M) {
	opts := jvm.DefaultOptions()
	opts.CheckJNI = true
	var err error
	vm, env, err = jvm.Create(opts)
	if err != nil {
		panic(err)
	}
	code := m.Run()
	cache.Release(env)
	if err := vm.Destroy(); err != nil {
		fmt.Fprintln(os.Stderr, "destroy:", err)
		code = 1
	}
	if _, _, err := vm.Attach(); !errors.Is(err, &jerrors.Error{Kind: jerrors.KindNotInitialized}) {
		fmt.Fprintln(os.Stderr, "attach after destroy:", err)
		code = 1
	}
	os.Exit(code)
}

func TestStaticCalls(t *testing.T) {
	err := vm.Do(func(env *jvm.Env) error {
		cls, err := jni.FindClass(env, "java/lang/Integer")
		if err != nil {
			return err
		}
		defer env.DeleteLocalRef(jni.Object(cls))

		parse, err := jni.ResolveStaticMethod2[jni.Int, *ref.Local[jni.StringRef], jni.Int](env, cls, "parseInt")
		if err != nil {
			return err
		}
		s, err := lang.NewString(env, "-2147483648")
		if err != nil {
			return err
		}
		defer s.Release()

		got, err := parse.Call(env, cls, s, 10)
		if err != nil {
			return err
		}
		if got != -2147483648 {
			t.Errorf("parseInt = %d", got)
		}

		bad, err := lang.NewString(env, "nope")
		if err != nil {
			return err
		}
		defer bad.Release()
		_, err = parse.Call(env, cls, bad, 10)
		err = cache.Describe(env, err)
		if th, ok := err.(*lang.Throwable); !ok || th.ClassName != "java.lang.NumberFormatException" {
			t.Errorf("parseInt(nope) = %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestObjectMethods(t *testing.T) {
	err := vm.Do(func(env *jvm.Env) error {
		s, err := lang.NewString(env, "hello")
		if err != nil {
			return err
		}
		obj := cache.NewObject(ref.Cast[jni.ObjectRef](s))
		defer obj.Release(env)

		str, err := obj.ToString(env)
		if err != nil {
			return err
		}
		if str != "hello" {
			t.Errorf("ToString = %q", str)
		}

		cls, err := obj.GetClass(env)
		if err != nil {
			return err
		}
		defer cls.Release(env)
		name, err := cls.GetName(env)
		if err != nil {
			return err
		}
		if name != "java.lang.String" {
			t.Errorf("GetName = %q", name)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestStringEncoding(t *testing.T) {
	err := vm.Do(func(env *jvm.Env) error {
		for _, want := range []string{"plain", "a\x00b", "héllo €", "😀 ok"} {
			s, err := lang.NewString(env, want)
			if err != nil {
				return err
			}
			got, err := lang.TakeString(env, s)
			if err != nil {
				return err
			}
			if got != want {
				t.Errorf("round trip %q = %q", want, got)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
