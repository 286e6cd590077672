package lang_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	jni "github.com/wippyai/go-jni"
	jerrors "github.com/wippyai/go-jni/errors"
	"github.com/wippyai/go-jni/jnitest"
	"github.com/wippyai/go-jni/lang"
	"github.com/wippyai/go-jni/ref"
)

type fixture struct {
	vm    *jnitest.VM
	env   *jnitest.Env
	cache *lang.Cache
	inst  *jnitest.Instance
	obj   *lang.Object
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	vm := jnitest.NewVM()
	vm.DefineMethodTest()
	env := vm.NewEnv()
	cache := lang.NewCache()
	inst := vm.New(jnitest.MethodTestClass, nil)
	obj := cache.NewObject(ref.NewLocal[jni.ObjectRef](env, env.NewLocal(inst)))

	t.Cleanup(func() {
		obj.Release(env)
		cache.Release(env)
		if n := vm.LiveLocals(); n != 0 {
			t.Errorf("leaked %d local references", n)
		}
		if n := vm.LiveGlobals(); n != 0 {
			t.Errorf("leaked %d global references", n)
		}
		vm.Verify(t)
	})
	return &fixture{vm: vm, env: env, cache: cache, inst: inst, obj: obj}
}

func TestObject_HashCodeAndToString(t *testing.T) {
	f := newFixture(t)

	h, err := f.obj.HashCode(f.env)
	if err != nil {
		t.Fatal(err)
	}
	if h != int32(f.inst.ID()) {
		t.Errorf("HashCode = %d, want %d", h, f.inst.ID())
	}

	s, err := f.obj.ToString(f.env)
	if err != nil {
		t.Fatal(err)
	}
	if want := fmt.Sprintf("MethodTest@%x", uint32(f.inst.ID())); s != want {
		t.Errorf("ToString = %q, want %q", s, want)
	}
}

func TestObject_Equals(t *testing.T) {
	f := newFixture(t)
	other := f.cache.NewObject(ref.NewLocal[jni.ObjectRef](f.env, f.env.NewLocal(f.vm.New(jnitest.MethodTestClass, nil))))
	defer other.Release(f.env)
	same := f.env.NewLocal(f.inst)
	defer f.env.DeleteLocalRef(same)

	tests := []struct {
		name  string
		other jni.Referent
		want  bool
	}{
		{"same handle", f.obj, true},
		{"same object, other handle", same, true},
		{"different object", other, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.obj.Equals(f.env, tt.other)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Equals = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestObject_NullReceiver(t *testing.T) {
	f := newFixture(t)
	null := f.cache.NewObject(nil)

	f.env.ResetCalls()
	if _, err := null.HashCode(f.env); !errors.Is(err, &jerrors.Error{Kind: jerrors.KindNullReference}) {
		t.Errorf("HashCode on null: %v", err)
	}
	if _, err := null.GetClass(f.env); err == nil {
		t.Error("GetClass on null should fail")
	}
	if n := f.env.TotalCalls(); n != 0 {
		t.Errorf("JNI functions invoked: %v", f.env.CalledFunctions())
	}
}

func TestObject_GetClass(t *testing.T) {
	f := newFixture(t)

	cls, err := f.obj.GetClass(f.env)
	if err != nil {
		t.Fatal(err)
	}
	defer cls.Release(f.env)
	if cls.IsGlobal() {
		t.Error("GetClass should return a local reference")
	}
	name, err := cls.GetName(f.env)
	if err != nil {
		t.Fatal(err)
	}
	if name != "MethodTest" {
		t.Errorf("GetName = %q", name)
	}

	g, err := cls.Global(f.env)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Release(f.env)
	if !g.IsGlobal() {
		t.Error("Global() should hold a global reference")
	}
}

func TestObject_NotifyAllCallsNotifyAll(t *testing.T) {
	f := newFixture(t)

	m, err := f.obj.Lock(f.env)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if err := f.obj.NotifyAll(f.env); err != nil {
		t.Fatal(err)
	}
	if err := f.obj.Notify(f.env); err != nil {
		t.Fatal(err)
	}
	if n := f.vm.NotifyAlls(f.inst); n != 1 {
		t.Errorf("notifyAll ran %d times, want 1", n)
	}
	if n := f.vm.Notifies(f.inst); n != 1 {
		t.Errorf("notify ran %d times, want 1", n)
	}
}

func TestObject_NotifyWithoutMonitor(t *testing.T) {
	f := newFixture(t)

	err := f.obj.Notify(f.env)
	if !errors.Is(err, jerrors.ErrException) {
		t.Fatalf("err = %v", err)
	}
	var th *lang.Throwable
	if !errors.As(err, &th) {
		t.Fatalf("Notify returned %T", err)
	}
	if th.ClassName != "java.lang.IllegalMonitorStateException" {
		t.Errorf("ClassName = %q", th.ClassName)
	}
	if _, ok := jni.ThrowableOf(err); ok {
		t.Error("returned error still carries the throwable reference")
	}
}

func TestObject_FailuresReleaseThrowable(t *testing.T) {
	f := newFixture(t)

	notify := func() error {
		if err := f.obj.Notify(f.env); err != nil {
			return err
		}
		return nil
	}
	// Resolve the method tables used on the failure path first.
	if err := notify(); err == nil {
		t.Fatal("notify without the monitor succeeded")
	}

	before := f.vm.LiveLocals()
	for i := 0; i < 100; i++ {
		if err := notify(); err == nil {
			t.Fatal("notify without the monitor succeeded")
		}
	}
	if after := f.vm.LiveLocals(); after != before {
		t.Errorf("live locals before=%d after=%d", before, after)
	}
}

func TestObject_Wait(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want time.Duration
	}{
		{"whole milliseconds", 2 * time.Second, 2 * time.Second},
		{"millis and nanos", 1500 * time.Microsecond, 1500 * time.Microsecond},
		{"sub-millisecond", 250 * time.Nanosecond, 250 * time.Nanosecond},
		{"max nanos", time.Millisecond - 1, time.Millisecond - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			m, err := f.obj.Lock(f.env)
			if err != nil {
				t.Fatal(err)
			}
			defer m.Close()

			if err := f.obj.WaitFor(f.env, tt.d); err != nil {
				t.Fatal(err)
			}
			waits := f.vm.Waits(f.inst)
			if len(waits) != 1 || waits[0] != tt.want {
				t.Errorf("waits = %v, want [%v]", waits, tt.want)
			}
		})
	}

	t.Run("untimed", func(t *testing.T) {
		f := newFixture(t)
		m, err := f.obj.Lock(f.env)
		if err != nil {
			t.Fatal(err)
		}
		defer m.Close()
		if err := f.obj.Wait(f.env); err != nil {
			t.Fatal(err)
		}
		if waits := f.vm.Waits(f.inst); len(waits) != 1 || waits[0] != 0 {
			t.Errorf("waits = %v", waits)
		}
	})

	t.Run("negative", func(t *testing.T) {
		f := newFixture(t)
		m, err := f.obj.Lock(f.env)
		if err != nil {
			t.Fatal(err)
		}
		defer m.Close()

		err = f.obj.WaitFor(f.env, -time.Millisecond)
		var th *lang.Throwable
		if !errors.As(err, &th) {
			t.Fatalf("err = %v", err)
		}
		if th.ClassName != "java.lang.IllegalArgumentException" || th.Message != "timeout value is negative" {
			t.Errorf("throwable = %v", th)
		}
		if !errors.Is(err, jerrors.ErrException) {
			t.Error("Throwable should unwrap to the exception error")
		}
	})
}

func TestCache_ForName(t *testing.T) {
	f := newFixture(t)

	cls, err := f.cache.ForName(f.env, "java/lang/String")
	if err != nil {
		t.Fatal(err)
	}
	defer cls.Release(f.env)
	if !cls.IsGlobal() {
		t.Error("ForName should hold a global reference")
	}
	name, err := cls.GetName(f.env)
	if err != nil {
		t.Fatal(err)
	}
	if name != "java.lang.String" {
		t.Errorf("GetName = %q", name)
	}
}

func TestCache_ForNameMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.cache.ForName(f.env, "com/example/Missing")
	if !errors.Is(err, &jerrors.Error{Kind: jerrors.KindClassNotFound}) {
		t.Fatalf("err = %v", err)
	}
	if !errors.Is(err, jerrors.ErrException) {
		t.Error("error should unwrap to the exception error")
	}
	if got := err.Error(); got != "java.lang.NoClassDefFoundError: com/example/Missing" {
		t.Errorf("err = %q", got)
	}
	if again := f.cache.Describe(f.env, err); again != err {
		t.Errorf("Describe changed a described error: %v", again)
	}
}

func TestCache_DescribeCallError(t *testing.T) {
	f := newFixture(t)

	cls, err := f.cache.ForName(f.env, jnitest.MethodTestClass)
	if err != nil {
		t.Fatal(err)
	}
	defer cls.Release(f.env)

	boom, err := jni.ResolveStaticMethod0[jni.Void](f.env, cls.Raw(), "staticThrowingMethod")
	if err != nil {
		t.Fatal(err)
	}
	_, err = boom.Call(f.env, cls)
	if _, ok := jni.ThrowableOf(err); !ok {
		t.Fatalf("Call err = %v, want an attached throwable", err)
	}
	err = f.cache.Describe(f.env, err)
	if got := err.Error(); got != "java.lang.RuntimeException: boom" {
		t.Errorf("Describe = %q", got)
	}

	var nilCache *lang.Cache
	_, err = boom.Call(f.env, cls)
	if got := nilCache.Describe(f.env, err).Error(); got != "java.lang.RuntimeException: boom" {
		t.Errorf("Describe on nil cache = %q", got)
	}
}

func TestClass_StaticMethod(t *testing.T) {
	f := newFixture(t)

	cls, err := f.cache.ForName(f.env, jnitest.MethodTestClass)
	if err != nil {
		t.Fatal(err)
	}
	defer cls.Release(f.env)

	identity, err := jni.ResolveStaticMethod1[jni.Int, jni.Int](f.env, cls.Raw(), "staticIntMethod")
	if err != nil {
		t.Fatal(err)
	}
	got, err := identity.Call(f.env, cls, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Errorf("staticIntMethod(7) = %d", got)
	}
}

func TestCache_Describe_PassThrough(t *testing.T) {
	f := newFixture(t)
	plain := errors.New("plain")
	if got := f.cache.Describe(f.env, plain); got != plain {
		t.Errorf("Describe changed a non-exception error: %v", got)
	}
}

func TestCache_ConcurrentInit(t *testing.T) {
	vm := jnitest.NewVM()
	vm.DefineMethodTest()
	setup := vm.NewEnv()
	cache := lang.NewCache()

	inst := vm.New(jnitest.MethodTestClass, nil)
	obj := cache.NewGlobalObject(ref.AdoptGlobal[jni.ObjectRef](setup.NewGlobal(inst)))

	const workers = 16
	envs := make([]*jnitest.Env, workers)
	var wg sync.WaitGroup
	for i := range envs {
		envs[i] = vm.NewEnv()
		wg.Add(1)
		go func(env *jnitest.Env) {
			defer wg.Done()
			h, err := obj.HashCode(env)
			if err != nil || h != int32(inst.ID()) {
				t.Errorf("HashCode = %d, %v", h, err)
			}
		}(envs[i])
	}
	wg.Wait()

	finds := 0
	for _, env := range envs {
		finds += env.Calls("FindClass")
	}
	if finds != 1 {
		t.Errorf("java/lang/Object resolved %d times, want 1", finds)
	}

	obj.Release(setup)
	cache.Release(setup)
	if n := vm.LiveGlobals(); n != 0 {
		t.Errorf("live globals = %d", n)
	}
	vm.Verify(t)
}

func TestMonitor_Idempotent(t *testing.T) {
	f := newFixture(t)

	m := lang.NewMonitor(f.env, f.obj)
	if m.Entered() || f.vm.MonitorDepth(f.inst) != 0 {
		t.Fatal("deferred monitor entered on creation")
	}
	if err := m.Enter(); err != nil {
		t.Fatal(err)
	}
	if err := m.Enter(); err != nil {
		t.Fatal(err)
	}
	if d := f.vm.MonitorDepth(f.inst); d != 1 {
		t.Errorf("depth = %d after double Enter, want 1", d)
	}
	if err := m.Leave(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if d := f.vm.MonitorDepth(f.inst); d != 0 {
		t.Errorf("depth = %d after Leave, want 0", d)
	}
	if n := f.env.Calls("MonitorExit"); n != 1 {
		t.Errorf("MonitorExit called %d times", n)
	}

	var nilMonitor *lang.Monitor
	if err := nilMonitor.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestMonitor_Null(t *testing.T) {
	f := newFixture(t)
	if _, err := lang.Enter(f.env, nil); !errors.Is(err, &jerrors.Error{Kind: jerrors.KindNullReference}) {
		t.Errorf("err = %v", err)
	}
}

func TestMonitor_Excludes(t *testing.T) {
	vm := jnitest.NewVM()
	inst := vm.New("java/lang/Object", nil)
	env1, env2 := vm.NewEnv(), vm.NewEnv()
	g := env1.NewGlobal(inst)

	m1, err := lang.Enter(env1, g)
	if err != nil {
		t.Fatal(err)
	}

	acquired := make(chan struct{})
	released := make(chan struct{})
	go func() {
		defer close(released)
		m2, err := lang.Enter(env2, g)
		if err != nil {
			t.Error(err)
			close(acquired)
			return
		}
		close(acquired)
		m2.Close()
	}()

	select {
	case <-acquired:
		t.Fatal("second thread entered a held monitor")
	case <-time.After(20 * time.Millisecond):
	}

	if err := m1.Close(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("second thread never entered")
	}
	<-released

	env1.DeleteGlobalRef(g)
	vm.Verify(t)
}

func TestString(t *testing.T) {
	f := newFixture(t)

	s, err := lang.NewString(f.env, "héllo")
	if err != nil {
		t.Fatal(err)
	}
	got, err := lang.GoString(f.env, s)
	if err != nil {
		t.Fatal(err)
	}
	if got != "héllo" {
		t.Errorf("GoString = %q", got)
	}
	got, err = lang.TakeString(f.env, s)
	if err != nil || got != "héllo" {
		t.Errorf("TakeString = %q, %v", got, err)
	}
	if !s.IsNull() {
		t.Error("TakeString should release")
	}

	if _, err := lang.GoString(f.env, nil); err == nil {
		t.Error("GoString(nil) should fail")
	}
}
