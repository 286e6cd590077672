// Package ref provides the JNI reference ownership types.
//
// Every object handle the VM hands out is one of three kinds, each with its
// own release rule:
//
//	Local[T]  - owned, thread-bound, released once via Release (defer it)
//	Global[T] - owned, valid on any thread until Release(env)
//	Weak[T]   - not owned, never keeps the object alive; Upgrade before use
//
// T is a reference category such as jni.StringRef or jni.ArrayRef[jni.Int];
// it fixes the descriptor used when the reference is passed as an argument
// or declared as a method result.
//
// # Promotion
//
//	local  -> global: local.Global()
//	local  -> weak:   local.Weak()
//	global -> local:  global.Local(env)
//	global -> weak:   global.Weak(env)
//	weak   -> local:  weak.Upgrade(env)       (errors.KindCollected once gone)
//	weak   -> global: weak.UpgradeGlobal(env)
//
// Promotion never consumes the source reference.
//
// # Results
//
// *Local[T] implements jni.Result, so a method declared to return
// *ref.Local[jni.StringRef] goes through CallObjectMethodA and comes back as
// an owned local of that category. Passing a Local or Global as an argument
// only reads its handle.
package ref
