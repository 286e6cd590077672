package jni

// Type is any Go type with a JNI field descriptor.
type Type interface {
	Descriptor() string
}

// Arg is a Type that can be packed into a Value. Scalar kinds, raw handles and
// owned references implement it; marshalling only reads the handle.
type Arg interface {
	Type
	Value() Value
}

// RefType names a reference category: the static Java type an object handle
// is declared as. Implement it to bind additional classes:
//
//	type HashMapRef struct{}
//
//	func (HashMapRef) ClassName() string  { return "java/util/HashMap" }
//	func (HashMapRef) Descriptor() string { return "Ljava/util/HashMap;" }
type RefType interface {
	Type
	ClassName() string
}

// Result is implemented by every type a method handle can return. R is the
// implementing type itself. Invoke selects the call primitive, Adapt turns the
// raw result into R. Both are called on the zero value of R.
type Result[R any] interface {
	Type
	Invoke(env Env, obj Object, id MethodID, args []Value) Value
	InvokeStatic(env Env, cls Class, id MethodID, args []Value) Value
	Adapt(env Env, raw Value) R
}

// Scalar kinds, named after their JNI counterparts.
type (
	Boolean bool
	Byte    int8
	Char    uint16
	Short   int16
	Int     int32
	Long    int64
	Float   float32
	Double  float64
)

// Void is the result type of methods returning nothing.
type Void struct{}

func (Boolean) Descriptor() string { return "Z" }
func (Byte) Descriptor() string    { return "B" }
func (Char) Descriptor() string    { return "C" }
func (Short) Descriptor() string   { return "S" }
func (Int) Descriptor() string     { return "I" }
func (Long) Descriptor() string    { return "J" }
func (Float) Descriptor() string   { return "F" }
func (Double) Descriptor() string  { return "D" }
func (Void) Descriptor() string    { return "V" }

func (b Boolean) Value() Value { return BooleanValue(bool(b)) }
func (b Byte) Value() Value    { return ByteValue(int8(b)) }
func (c Char) Value() Value    { return CharValue(uint16(c)) }
func (s Short) Value() Value   { return ShortValue(int16(s)) }
func (i Int) Value() Value     { return IntValue(int32(i)) }
func (l Long) Value() Value    { return LongValue(int64(l)) }
func (f Float) Value() Value   { return FloatValue(float32(f)) }
func (d Double) Value() Value  { return DoubleValue(float64(d)) }

// Reference categories for the java.lang types the core knows about.
type (
	ObjectRef    struct{}
	StringRef    struct{}
	ClassRef     struct{}
	ThrowableRef struct{}
)

func (ObjectRef) ClassName() string    { return "java/lang/Object" }
func (StringRef) ClassName() string    { return "java/lang/String" }
func (ClassRef) ClassName() string     { return "java/lang/Class" }
func (ThrowableRef) ClassName() string { return "java/lang/Throwable" }

func (ObjectRef) Descriptor() string    { return "Ljava/lang/Object;" }
func (StringRef) Descriptor() string    { return "Ljava/lang/String;" }
func (ClassRef) Descriptor() string     { return "Ljava/lang/Class;" }
func (ThrowableRef) Descriptor() string { return "Ljava/lang/Throwable;" }

// ArrayRef is the category of Java arrays with element type E, which may be a
// scalar kind or another reference category.
type ArrayRef[E Type] struct{}

// ClassName returns the array's binary name, which FindClass accepts as is.
func (ArrayRef[E]) ClassName() string {
	var e E
	return "[" + e.Descriptor()
}

func (a ArrayRef[E]) Descriptor() string { return a.ClassName() }
