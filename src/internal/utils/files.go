package utils

import (
	"io"

	"github.com/maksimkurb/runlog/src/internal/log"
)

// CloseOrWarn closes c and reports a failure through the diagnostic logger.
func CloseOrWarn(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warnf("Failed to close: %v", err)
	}
}
