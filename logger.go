// SPDX-License-Identifier: MIT

package chroma

import (
	"sync/atomic"

	"github.com/sgostarter/i/l"
)

// ClsKey values used by the subpackages when tagging log records.
const (
	LogClsSpectral    = "spectral"
	LogClsColorimetry = "colorimetry"
	LogClsTemperature = "temperature"
	LogClsNotation    = "notation"
	LogClsQuality     = "quality"
)

type loggerHolder struct {
	logger l.Wrapper
}

var globalLogger atomic.Pointer[loggerHolder]

func init() {
	globalLogger.Store(&loggerHolder{logger: l.NewNopLoggerWrapper()})
}

// SetLogger installs the logger used for warnings emitted by the library
// (recommended-domain violations, interpolator fallbacks). A nil logger
// restores the silent default.
func SetLogger(logger l.Wrapper) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	globalLogger.Store(&loggerHolder{logger: logger})
}

// Logger returns the current library logger.
func Logger() l.Wrapper {
	return globalLogger.Load().logger
}

// LoggerFor returns the library logger tagged with the given class.
func LoggerFor(cls string) l.Wrapper {
	return Logger().WithFields(l.StringField(l.ClsKey, cls))
}
