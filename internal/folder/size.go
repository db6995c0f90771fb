package folder

import (
	"fmt"
	"math"
)

// sizeUnits are the 1024-based units tried in order before falling back to PB.
//
//nolint:gochecknoglobals // Lookup table
var sizeUnits = []string{"", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with one decimal digit in binary units.
// Values below 1024 carry no unit: FormatSize(1023) is "1023.0 ",
// FormatSize(1536) is "1.5 KB".
func FormatSize(bytes int64) string {
	value := float64(bytes)

	for _, unit := range sizeUnits {
		if math.Abs(value) < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}

		value /= 1024.0
	}

	return fmt.Sprintf("%.1f PB", value)
}
