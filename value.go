package jni

import "math"

// Value is one element of a JNI argument pack, laid out like jvalue: an
// untagged 8-byte union whose low-order bytes hold the active member on
// little-endian hosts. Which member is active is decided by the caller's
// static types; Value carries no tag.
type Value uint64

func BooleanValue(b bool) Value {
	if b {
		return 1
	}
	return 0
}

func ByteValue(b int8) Value { return Value(uint8(b)) }

func CharValue(c uint16) Value { return Value(c) }

func ShortValue(s int16) Value { return Value(uint16(s)) }

func IntValue(i int32) Value { return Value(uint32(i)) }

func LongValue(l int64) Value { return Value(uint64(l)) }

func FloatValue(f float32) Value { return Value(math.Float32bits(f)) }

func DoubleValue(d float64) Value { return Value(math.Float64bits(d)) }

func ObjectValue(o Object) Value { return Value(uint64(o)) }

// Boolean reads the low byte only, like jboolean.
func (v Value) Boolean() bool { return uint8(v) != 0 }

func (v Value) Byte() int8 { return int8(uint8(v)) }

func (v Value) Char() uint16 { return uint16(v) }

func (v Value) Short() int16 { return int16(uint16(v)) }

func (v Value) Int() int32 { return int32(uint32(v)) }

func (v Value) Long() int64 { return int64(v) }

func (v Value) Float() float32 { return math.Float32frombits(uint32(v)) }

func (v Value) Double() float64 { return math.Float64frombits(uint64(v)) }

func (v Value) Object() Object { return Object(uintptr(v)) }
