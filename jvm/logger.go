package jvm

import (
	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
)

// Logger returns the logger for VM lifecycle events.
func Logger() *zap.Logger {
	return jni.Logger().Named("jvm")
}
