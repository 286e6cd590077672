package jni

//go:generate go run ./cmd/jnigen -arity 6 -out method_gen.go

// MaxArity is the largest parameter count with a generated method handle.
const MaxArity = 6

func resolveMethod(env Env, cls Class, name, sig string) (MethodID, error) {
	return GetMethodID(env, cls, name, sig)
}

func resolveStaticMethod(env Env, cls Class, name, sig string) (MethodID, error) {
	return GetStaticMethodID(env, cls, name, sig)
}

func handleOf(r Referent) Object {
	if r == nil {
		return 0
	}
	return r.Handle()
}
