package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs that functionName has started. The user
// should defer the returned function, which logs how long the call took.
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	start := time.Now()
	log.Tracef("%s start", functionName)
	return func() {
		log.Tracef("%s end. Took: %s", functionName, time.Since(start))
	}
}
