package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatBytes formats a byte count into a human-readable string with 1 decimal place.
// Thresholds: <1KB → B, <1MB → KB, <1GB → MB, <1TB → GB, else TB.
func FormatBytes(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	case bytes < gb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes < tb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	default:
		return fmt.Sprintf("%.1f TB", float64(bytes)/tb)
	}
}

// FormatGB formats a byte count as GiB with 2 decimal places.
// Example: 1610612736 → "1.50 GB".
func FormatGB(bytes int64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/(1<<30))
}

// FormatRatio formats a GiB-per-shard ratio with 2 decimal places.
func FormatRatio(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// byteUnits maps cat API size suffixes to multipliers, longest suffix first
// so that "kb" is tried before "b".
var byteUnits = []struct {
	suffix string
	mult   float64
}{
	{"pb", 1 << 50},
	{"tb", 1 << 40},
	{"gb", 1 << 30},
	{"mb", 1 << 20},
	{"kb", 1 << 10},
	{"b", 1},
}

// ParseBytes parses a cat API size such as "1073741824", "512b" or "20.4gb"
// (case-insensitive) into a byte count. Fractional results are rounded.
func ParseBytes(s string) (int64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, fmt.Errorf("empty size")
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	for _, u := range byteUnits {
		if !strings.HasSuffix(v, u.suffix) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, u.suffix)), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size %q", s)
		}
		v := math.Round(f * u.mult)
		// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
		if math.IsNaN(v) || math.IsInf(v, 0) || v >= float64(math.MaxInt64) || v <= float64(math.MinInt64) {
			return 0, fmt.Errorf("invalid size %q", s)
		}
		return int64(v), nil
	}
	return 0, fmt.Errorf("invalid size %q", s)
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
