// Package jvm embeds a Java VM through the JNI invocation API.
//
// Options configure the VM and can be loaded from TOML with LoadOptions.
// The VM itself needs cgo, a JDK and the jvm build tag:
//
//	CGO_CFLAGS="-I$JAVA_HOME/include -I$JAVA_HOME/include/linux" \
//	CGO_LDFLAGS="-L$JAVA_HOME/lib/server -Wl,-rpath,$JAVA_HOME/lib/server" \
//	go build -tags jvm ./...
//
// Only little-endian targets are supported, since jni.Value mirrors the
// jvalue union byte for byte.
//
// # Threads
//
// A JNI environment belongs to one OS thread. Create and VM.Attach lock the
// calling goroutine to its thread for as long as the Env is in use:
//
//	vm, env, err := jvm.Create(opts)
//	if err != nil {
//	    return err
//	}
//	defer vm.Destroy()
//
//	go vm.Do(func(env *jvm.Env) error {
//	    // env is valid only inside this callback
//	    return nil
//	})
package jvm
