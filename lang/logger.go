package lang

import (
	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
)

// Logger returns the logger for cache and monitor diagnostics.
func Logger() *zap.Logger {
	return jni.Logger().Named("lang")
}
