package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
)

// FormatXError renders an asynchronous X protocol error for logging.
func FormatXError(err xgb.Error) string {
	return fmt.Sprintf("%s (resource %d, sequence %d)", err.Error(), err.BadId(), err.SequenceId())
}
