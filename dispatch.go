package jni

import (
	"github.com/wippyai/go-jni/errors"
)

// Call invokes an instance method and adapts its result to R.
//
// The call primitive is chosen by R's Invoke method, so the selection happens
// through the type parameter and never through a type switch. A pending
// exception after the primitive returns is cleared and reported; Adapt is not
// run in that case.
func Call[R Result[R]](env Env, obj Object, id MethodID, args []Value) (R, error) {
	var zero R
	if id == 0 {
		return zero, errors.NullMethodID(errors.PhaseCall, zero.Descriptor())
	}

	raw := zero.Invoke(env, obj, id, args)
	if err := CheckException(env); err != nil {
		return zero, err
	}
	return zero.Adapt(env, raw), nil
}

// CallStatic is Call for static methods, keyed by class instead of instance.
func CallStatic[R Result[R]](env Env, cls Class, id MethodID, args []Value) (R, error) {
	var zero R
	if id == 0 {
		return zero, errors.NullMethodID(errors.PhaseCall, zero.Descriptor())
	}

	raw := zero.InvokeStatic(env, cls, id, args)
	if err := CheckException(env); err != nil {
		return zero, err
	}
	return zero.Adapt(env, raw), nil
}

func (Boolean) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	return BooleanValue(env.CallBooleanMethodA(obj, id, args))
}

func (Boolean) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	return BooleanValue(env.CallStaticBooleanMethodA(cls, id, args))
}

func (Boolean) Adapt(_ Env, raw Value) Boolean { return Boolean(raw.Boolean()) }

func (Byte) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	return ByteValue(env.CallByteMethodA(obj, id, args))
}

func (Byte) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	return ByteValue(env.CallStaticByteMethodA(cls, id, args))
}

func (Byte) Adapt(_ Env, raw Value) Byte { return Byte(raw.Byte()) }

func (Char) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	return CharValue(env.CallCharMethodA(obj, id, args))
}

func (Char) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	return CharValue(env.CallStaticCharMethodA(cls, id, args))
}

func (Char) Adapt(_ Env, raw Value) Char { return Char(raw.Char()) }

func (Short) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	return ShortValue(env.CallShortMethodA(obj, id, args))
}

func (Short) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	return ShortValue(env.CallStaticShortMethodA(cls, id, args))
}

func (Short) Adapt(_ Env, raw Value) Short { return Short(raw.Short()) }

func (Int) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	return IntValue(env.CallIntMethodA(obj, id, args))
}

func (Int) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	return IntValue(env.CallStaticIntMethodA(cls, id, args))
}

func (Int) Adapt(_ Env, raw Value) Int { return Int(raw.Int()) }

func (Long) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	return LongValue(env.CallLongMethodA(obj, id, args))
}

func (Long) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	return LongValue(env.CallStaticLongMethodA(cls, id, args))
}

func (Long) Adapt(_ Env, raw Value) Long { return Long(raw.Long()) }

func (Float) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	return FloatValue(env.CallFloatMethodA(obj, id, args))
}

func (Float) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	return FloatValue(env.CallStaticFloatMethodA(cls, id, args))
}

func (Float) Adapt(_ Env, raw Value) Float { return Float(raw.Float()) }

func (Double) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	return DoubleValue(env.CallDoubleMethodA(obj, id, args))
}

func (Double) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	return DoubleValue(env.CallStaticDoubleMethodA(cls, id, args))
}

func (Double) Adapt(_ Env, raw Value) Double { return Double(raw.Double()) }

func (Void) Invoke(env Env, obj Object, id MethodID, args []Value) Value {
	env.CallVoidMethodA(obj, id, args)
	return 0
}

func (Void) InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value {
	env.CallStaticVoidMethodA(cls, id, args)
	return 0
}

func (Void) Adapt(Env, Value) Void { return Void{} }

// InvokeObject and InvokeStaticObject are the object-return primitives shared
// by every reference result type.
func InvokeObject(env Env, obj Object, id MethodID, args []Value) Value {
	return ObjectValue(env.CallObjectMethodA(obj, id, args))
}

func InvokeStaticObject(env Env, cls Class, id MethodID, args []Value) Value {
	return ObjectValue(env.CallStaticObjectMethodA(cls, id, args))
}
