package lang

import (
	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
)

// Monitor holds the intrinsic lock of an object, as a Java synchronized
// block would. Entering and leaving are idempotent: a Monitor is entered at
// most once at a time and Leave without a matching Enter does nothing.
//
//	m, err := lang.Enter(env, obj)
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//
// A Monitor belongs to the thread of env and must not be shared. Exceptions
// raised by entering or leaving are returned as *Throwable.
type Monitor struct {
	env     jni.Env
	obj     jni.Referent
	cache   *Cache
	entered bool
}

// Enter creates a Monitor on obj and enters it.
func Enter(env jni.Env, obj jni.Referent) (*Monitor, error) {
	m := NewMonitor(env, obj)
	if err := m.Enter(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewMonitor creates a Monitor on obj without entering it.
func NewMonitor(env jni.Env, obj jni.Referent) *Monitor {
	return &Monitor{env: env, obj: obj}
}

// Entered reports whether the monitor is currently held through m.
func (m *Monitor) Entered() bool { return m != nil && m.entered }

// Enter acquires the monitor, blocking while another thread holds it.
func (m *Monitor) Enter() error {
	if m == nil || m.entered {
		return nil
	}
	obj := m.handle()
	if obj == jni.Null {
		return errors.NullReference(errors.PhaseMonitor, "monitor object")
	}
	status := m.env.MonitorEnter(obj)
	if err := jni.CheckException(m.env); err != nil {
		return m.cache.Describe(m.env, err)
	}
	if status != 0 {
		return errors.Monitor("MonitorEnter", status)
	}
	m.entered = true
	return nil
}

// Leave releases the monitor if m holds it.
func (m *Monitor) Leave() error {
	if m == nil || !m.entered {
		return nil
	}
	m.entered = false
	status := m.env.MonitorExit(m.handle())
	if err := jni.CheckException(m.env); err != nil {
		Logger().Debug("monitor exit raised", zap.Int32("status", status))
		return m.cache.Describe(m.env, err)
	}
	if status != 0 {
		return errors.Monitor("MonitorExit", status)
	}
	return nil
}

// Close implements io.Closer by leaving the monitor.
func (m *Monitor) Close() error {
	return m.Leave()
}

func (m *Monitor) handle() jni.Object {
	if m.obj == nil {
		return jni.Null
	}
	return m.obj.Handle()
}
