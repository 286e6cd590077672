package jni_test

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	jni "github.com/wippyai/go-jni"
	jerrors "github.com/wippyai/go-jni/errors"
	"github.com/wippyai/go-jni/jnitest"
	"github.com/wippyai/go-jni/ref"
)

// scalar is a kind usable both as argument and result.
type scalar[T any] interface {
	jni.Result[T]
	jni.Arg
	comparable
}

type fixture struct {
	vm   *jnitest.VM
	env  *jnitest.Env
	cls  jni.Class
	obj  jni.Object
	inst *jnitest.Instance
	void *int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	vm := jnitest.NewVM()
	_, voids := vm.DefineMethodTest()
	env := vm.NewEnv()

	cls, err := jni.FindClass(env, jnitest.MethodTestClass)
	if err != nil {
		t.Fatalf("FindClass: %v", err)
	}
	inst := vm.New(jnitest.MethodTestClass, nil)
	f := &fixture{vm: vm, env: env, cls: cls, obj: env.NewLocal(inst), inst: inst, void: voids}
	t.Cleanup(func() {
		env.DeleteLocalRef(f.obj)
		env.DeleteLocalRef(jni.Object(f.cls))
		vm.Verify(t)
	})
	return f
}

// callFunctions returns the Call*MethodA primitives invoked since the last
// ResetCalls.
func callFunctions(env *jnitest.Env) map[string]int {
	out := make(map[string]int)
	for _, fn := range env.CalledFunctions() {
		if strings.HasPrefix(fn, "Call") {
			out[fn] = env.Calls(fn)
		}
	}
	return out
}

func exact[T comparable](got, want T) bool { return got == want }

// within1e4Percent compares floats with a relative tolerance of 1e-4 percent.
func within1e4Percent[T jni.Float | jni.Double](got, want T) bool {
	if got == want {
		return true
	}
	diff := math.Abs(float64(got) - float64(want))
	return diff <= math.Abs(float64(want))*1e-6
}

func roundTrip[T scalar[T]](t *testing.T, f *fixture, kind string, eq func(got, want T) bool, values ...T) {
	t.Helper()
	lower := strings.ToLower(kind[:1]) + kind[1:]

	static, err := jni.ResolveStaticMethod1[T, T](f.env, f.cls, "static"+kind+"Method")
	if err != nil {
		t.Fatalf("resolve static%sMethod: %v", kind, err)
	}
	inst, err := jni.ResolveMethod1[T, T](f.env, f.cls, lower+"Method")
	if err != nil {
		t.Fatalf("resolve %sMethod: %v", lower, err)
	}

	for _, v := range values {
		f.env.ResetCalls()
		got, err := static.Call(f.env, f.cls, v)
		if err != nil {
			t.Fatalf("static call(%v): %v", v, err)
		}
		if !eq(got, v) {
			t.Errorf("static%sMethod(%v) = %v", kind, v, got)
		}
		calls := callFunctions(f.env)
		if want := "CallStatic" + kind + "MethodA"; len(calls) != 1 || calls[want] != 1 {
			t.Errorf("static call invoked %v, want exactly one %s", calls, want)
		}

		f.env.ResetCalls()
		got, err = inst.Call(f.env, f.obj, v)
		if err != nil {
			t.Fatalf("instance call(%v): %v", v, err)
		}
		if !eq(got, v) {
			t.Errorf("%sMethod(%v) = %v", lower, v, got)
		}
		calls = callFunctions(f.env)
		if want := "Call" + kind + "MethodA"; len(calls) != 1 || calls[want] != 1 {
			t.Errorf("instance call invoked %v, want exactly one %s", calls, want)
		}
	}
}

func TestCall_ScalarRoundTrip(t *testing.T) {
	f := newFixture(t)

	t.Run("boolean", func(t *testing.T) {
		roundTrip(t, f, "Boolean", exact[jni.Boolean], true, false)
	})
	t.Run("byte", func(t *testing.T) {
		roundTrip(t, f, "Byte", exact[jni.Byte], math.MinInt8, 0, math.MaxInt8)
	})
	t.Run("char", func(t *testing.T) {
		roundTrip(t, f, "Char", exact[jni.Char], 0, 'a', math.MaxUint16)
	})
	t.Run("short", func(t *testing.T) {
		roundTrip(t, f, "Short", exact[jni.Short], math.MinInt16, 0, math.MaxInt16)
	})
	t.Run("int", func(t *testing.T) {
		roundTrip(t, f, "Int", exact[jni.Int], math.MinInt32, math.MaxInt32, 0, -1, 1)
	})
	t.Run("long", func(t *testing.T) {
		roundTrip(t, f, "Long", exact[jni.Long], math.MinInt64, 0, math.MaxInt64)
	})
	t.Run("float", func(t *testing.T) {
		roundTrip(t, f, "Float", within1e4Percent[jni.Float],
			math.SmallestNonzeroFloat32, -math.MaxFloat32, 0, 3.14159, math.MaxFloat32)
	})
	t.Run("double", func(t *testing.T) {
		roundTrip(t, f, "Double", within1e4Percent[jni.Double],
			math.SmallestNonzeroFloat64, -math.MaxFloat64, 0, 2.718281828, math.MaxFloat64)
	})
}

func TestCall_IntMin(t *testing.T) {
	f := newFixture(t)

	m, err := jni.ResolveStaticMethod1[jni.Int, jni.Int](f.env, f.cls, "staticIntMethod")
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Call(f.env, f.cls, math.MinInt32)
	if err != nil {
		t.Fatal(err)
	}
	if got != math.MinInt32 {
		t.Errorf("got %d, want %d", got, math.MinInt32)
	}
}

func TestCall_Void(t *testing.T) {
	f := newFixture(t)

	static, err := jni.ResolveStaticMethod0[jni.Void](f.env, f.cls, "staticVoidMethod")
	if err != nil {
		t.Fatal(err)
	}
	inst, err := jni.ResolveMethod0[jni.Void](f.env, f.cls, "voidMethod")
	if err != nil {
		t.Fatal(err)
	}

	f.env.ResetCalls()
	if _, err := static.Call(f.env, f.cls); err != nil {
		t.Fatal(err)
	}
	if _, err := inst.Call(f.env, f.obj); err != nil {
		t.Fatal(err)
	}
	if *f.void != 2 {
		t.Errorf("void bodies ran %d times, want 2", *f.void)
	}
	if n := f.env.Calls("CallStaticVoidMethodA"); n != 1 {
		t.Errorf("CallStaticVoidMethodA = %d", n)
	}
	if n := f.env.Calls("CallVoidMethodA"); n != 1 {
		t.Errorf("CallVoidMethodA = %d", n)
	}
}

func TestCall_ObjectResults(t *testing.T) {
	f := newFixture(t)
	baseline := f.env.LiveLocals()

	t.Run("string identity", func(t *testing.T) {
		m, err := jni.ResolveStaticMethod1[*ref.Local[jni.StringRef], *ref.Local[jni.StringRef]](f.env, f.cls, "staticStringMethod")
		if err != nil {
			t.Fatal(err)
		}
		arg := ref.NewLocal[jni.StringRef](f.env, f.env.NewStringUTF("hello"))
		defer arg.Release()

		got, err := m.Call(f.env, f.cls, arg)
		if err != nil {
			t.Fatal(err)
		}
		defer got.Release()
		if s := f.env.GetStringUTF(got.Handle()); s != "hello" {
			t.Errorf("got %q", s)
		}
	})

	t.Run("null argument", func(t *testing.T) {
		m, err := jni.ResolveMethod1[*ref.Local[jni.StringRef], *ref.Local[jni.StringRef]](f.env, f.cls, "stringMethod")
		if err != nil {
			t.Fatal(err)
		}
		var null *ref.Local[jni.StringRef]
		got, err := m.Call(f.env, f.obj, null)
		if err != nil {
			t.Fatal(err)
		}
		if !got.IsNull() {
			t.Errorf("got %v, want null", got)
		}
		got.Release()
	})

	t.Run("array", func(t *testing.T) {
		m, err := jni.ResolveStaticMethod1[*ref.Local[jni.ArrayRef[jni.Int]], *ref.Local[jni.ArrayRef[jni.Int]]](f.env, f.cls, "staticIntArrayMethod")
		if err != nil {
			t.Fatal(err)
		}
		f.vm.DefineClass("[I", "")
		arr := ref.NewLocal[jni.ArrayRef[jni.Int]](f.env, f.env.NewLocal(f.vm.New("[I", []int32{1, 2, 3})))
		defer arr.Release()

		got, err := m.Call(f.env, f.cls, arr)
		if err != nil {
			t.Fatal(err)
		}
		defer got.Release()
		if f.env.Deref(got.Handle()) != f.env.Deref(arr.Handle()) {
			t.Error("array identity not preserved")
		}
	})

	t.Run("arity two", func(t *testing.T) {
		m, err := jni.ResolveStaticMethod2[*ref.Local[jni.StringRef], *ref.Local[jni.StringRef], jni.Int](f.env, f.cls, "concat")
		if err != nil {
			t.Fatal(err)
		}
		s := ref.NewLocal[jni.StringRef](f.env, f.env.NewStringUTF("n="))
		defer s.Release()
		got, err := m.Call(f.env, f.cls, s, 42)
		if err != nil {
			t.Fatal(err)
		}
		defer got.Release()
		if v := f.env.GetStringUTF(got.Handle()); v != "n=42" {
			t.Errorf("got %q", v)
		}
	})

	if n := f.env.LiveLocals(); n != baseline {
		t.Errorf("live locals = %d, want %d", n, baseline)
	}
}

func TestCall_ArityCeiling(t *testing.T) {
	f := newFixture(t)

	m, err := jni.ResolveStaticMethod6[jni.Long, jni.Int, jni.Int, jni.Int, jni.Int, jni.Int, jni.Int](f.env, f.cls, "sum6")
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Call(f.env, f.cls, 1, 2, 3, 4, 5, math.MaxInt32)
	if err != nil {
		t.Fatal(err)
	}
	if want := jni.Long(15 + math.MaxInt32); got != want {
		t.Errorf("sum6 = %d, want %d", got, want)
	}
}

func TestCall_ExceptionIsClearedAndReported(t *testing.T) {
	f := newFixture(t)

	throwing, err := jni.ResolveStaticMethod0[jni.Void](f.env, f.cls, "staticThrowingMethod")
	if err != nil {
		t.Fatal(err)
	}
	_, err = throwing.Call(f.env, f.cls)
	if !errors.Is(err, jerrors.ErrException) {
		t.Fatalf("err = %v, want exception", err)
	}
	if p := f.env.Pending(); p != nil {
		t.Fatalf("exception still pending: %s", p.Class.Name)
	}

	throwable, ok := jni.ThrowableOf(err)
	if !ok {
		t.Fatal("no throwable attached")
	}
	inst := f.env.Deref(throwable)
	if inst == nil || inst.Class.Name != "java/lang/RuntimeException" || inst.Value != "boom" {
		t.Errorf("throwable = %+v", inst)
	}
	jni.ReleaseException(f.env, err)
	if n := f.vm.Deletes(throwable); n != 1 {
		t.Errorf("throwable deleted %d times", n)
	}
	jni.ReleaseException(f.env, err)
	if n := f.vm.Deletes(throwable); n != 1 {
		t.Errorf("second release deleted again: %d", n)
	}

	// the env is usable right away
	m, err := jni.ResolveStaticMethod1[jni.Int, jni.Int](f.env, f.cls, "staticIntMethod")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := m.Call(f.env, f.cls, 7); err != nil || v != 7 {
		t.Errorf("follow-up call = %d, %v", v, err)
	}
}

func TestCall_ExceptionSkipsAdapt(t *testing.T) {
	f := newFixture(t)

	m, err := jni.ResolveMethod0[jni.Int](f.env, f.cls, "throwingIntMethod")
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Call(f.env, f.obj)
	if err == nil {
		t.Fatal("expected error")
	}
	defer jni.ReleaseException(f.env, err)
	if got != 0 {
		t.Errorf("result = %d, want zero value", got)
	}
	var e *jerrors.Error
	if !errors.As(err, &e) || e.Phase != jerrors.PhaseCall {
		t.Errorf("err = %v, want call phase", err)
	}
}

func TestCall_NullMethodID(t *testing.T) {
	f := newFixture(t)

	f.env.ResetCalls()
	_, err := jni.NewStaticMethod1[jni.Int, jni.Int](0).Call(f.env, f.cls, 1)
	if !errors.Is(err, jerrors.ErrNullMethodID) {
		t.Fatalf("err = %v, want null method id", err)
	}
	_, err = jni.NewMethod0[*ref.Local[jni.StringRef]](0).Call(f.env, f.obj)
	if !errors.Is(err, jerrors.ErrNullMethodID) {
		t.Fatalf("err = %v, want null method id", err)
	}
	if n := f.env.TotalCalls(); n != 0 {
		t.Errorf("JNI functions invoked: %v", f.env.CalledFunctions())
	}
}

func TestCall_NullReceiver(t *testing.T) {
	f := newFixture(t)

	m, err := jni.ResolveMethod1[jni.Int, jni.Int](f.env, f.cls, "intMethod")
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.Call(f.env, nil, 1)
	if !errors.Is(err, jerrors.ErrException) {
		t.Fatalf("err = %v, want NullPointerException", err)
	}
	throwable, _ := jni.ThrowableOf(err)
	if inst := f.env.Deref(throwable); inst.Class.Name != "java/lang/NullPointerException" {
		t.Errorf("throwable class = %s", inst.Class.Name)
	}
	jni.ReleaseException(f.env, err)
}

func TestResolve_MissingMethod(t *testing.T) {
	f := newFixture(t)

	_, err := jni.ResolveStaticMethod0[jni.Void](f.env, f.cls, "doesNotExist")
	if !errors.Is(err, jerrors.ErrException) {
		t.Fatalf("err = %v, want exception", err)
	}
	var e *jerrors.Error
	if errors.As(err, &e) && e.Phase != jerrors.PhaseResolve {
		t.Errorf("phase = %s", e.Phase)
	}
	if f.env.Pending() != nil {
		t.Error("NoSuchMethodError still pending")
	}
	throwable, ok := jni.ThrowableOf(err)
	if !ok {
		t.Fatal("no throwable")
	}
	if inst := f.env.Deref(throwable); inst.Class.Name != "java/lang/NoSuchMethodError" {
		t.Errorf("throwable class = %s", inst.Class.Name)
	}
	jni.ReleaseException(f.env, err)

	// a static method is not found as an instance method
	_, err = jni.ResolveMethod1[jni.Int, jni.Int](f.env, f.cls, "staticIntMethod")
	if err == nil {
		t.Fatal("expected error")
	}
	jni.ReleaseException(f.env, err)

	// wrong descriptor
	_, err = jni.ResolveStaticMethod1[jni.Long, jni.Int](f.env, f.cls, "staticIntMethod")
	if err == nil {
		t.Fatal("expected error")
	}
	jni.ReleaseException(f.env, err)
}

// silentEnv reports a missing method with a null id and no exception.
type silentEnv struct {
	*jnitest.Env
}

func (silentEnv) GetStaticMethodID(jni.Class, string, string) jni.MethodID { return 0 }

func TestResolve_NullIDWithoutException(t *testing.T) {
	f := newFixture(t)

	_, err := jni.ResolveStaticMethod0[jni.Void](silentEnv{f.env}, f.cls, "staticVoidMethod")
	if !errors.Is(err, jerrors.ErrMethodNotFound) {
		t.Fatalf("err = %v, want method not found", err)
	}
	if _, ok := jni.ThrowableOf(err); ok {
		t.Error("unexpected throwable")
	}
}

func TestFindClass_NotFound(t *testing.T) {
	vm := jnitest.NewVM()
	env := vm.NewEnv()
	defer vm.Verify(t)

	_, err := jni.FindClass(env, "com/example/Missing")
	var e *jerrors.Error
	if !errors.As(err, &e) || e.Kind != jerrors.KindClassNotFound {
		t.Fatalf("err = %v, want class not found", err)
	}
	if !errors.Is(err, jerrors.ErrException) {
		t.Error("cause should carry the NoClassDefFoundError")
	}
	if env.Pending() != nil {
		t.Error("exception still pending")
	}
	jni.ReleaseException(env, err)
	if n := env.LiveLocals(); n != 0 {
		t.Errorf("live locals = %d", n)
	}
}

func TestMethod_ConcurrentEnvs(t *testing.T) {
	vm := jnitest.NewVM()
	vm.DefineMethodTest()
	setup := vm.NewEnv()
	cls, err := jni.FindClass(setup, jnitest.MethodTestClass)
	if err != nil {
		t.Fatal(err)
	}
	m, err := jni.ResolveStaticMethod1[jni.Long, jni.Long](setup, cls, "staticLongMethod")
	if err != nil {
		t.Fatal(err)
	}
	global := setup.NewGlobalRef(jni.Object(cls))
	setup.DeleteLocalRef(jni.Object(cls))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			env := vm.NewEnv()
			for j := int64(0); j < 100; j++ {
				v, err := m.Call(env, jni.Class(global), jni.Long(n*1000+j))
				if err != nil || v != jni.Long(n*1000+j) {
					t.Errorf("goroutine %d: got %d, %v", n, v, err)
					return
				}
			}
		}(int64(i))
	}
	wg.Wait()

	setup.DeleteGlobalRef(global)
	vm.Verify(t)
}
