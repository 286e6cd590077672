package classfile

import (
	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
)

// Logger returns the logger for class file verification.
func Logger() *zap.Logger {
	return jni.Logger().Named("classfile")
}
