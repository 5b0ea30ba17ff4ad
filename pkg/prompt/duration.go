package prompt

import (
	"fmt"
	"time"
)

// FormatDuration renders a module computation time for the diagnostic
// tables: "<1ms" below a millisecond, whole milliseconds above.
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms == 0 {
		return "<1ms"
	}
	return fmt.Sprintf("%dms", ms)
}
