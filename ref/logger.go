package ref

import (
	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
)

// Logger returns the logger used for reference lifecycle diagnostics.
func Logger() *zap.Logger {
	return jni.Logger().Named("ref")
}
