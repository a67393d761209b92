package reportkit

import (
	"fmt"
	"strings"
	"time"

	"github.com/SumanthCsy/reportkit/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date labels.
//   - "auto" resolves to t in YYYY-MM-DD format
//   - "auto:FORMAT" resolves to t in a custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" uses a named preset (iso, european, us, long)
//   - any other value is returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := dateutil.DefaultFormat
	if lower != "auto" {
		if !strings.HasPrefix(lower, "auto:") {
			return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", dateutil.ErrInvalidDateFormat, value)
		}
		format = value[len("auto:"):]
		if preset, ok := dateutil.Presets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	layout, err := dateutil.ParseFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
