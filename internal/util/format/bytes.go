package format

import "strconv"

// HumanizeBytes converts a byte count into an IEC string (e.g., "1.50 MiB").
func HumanizeBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return strconv.FormatUint(b, 10) + " B"
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}
	var buf [24]byte
	frac := float64(b) / float64(div)
	s := strconv.AppendFloat(buf[:0], frac, 'f', 2, 64)
	suffix := []string{"KiB", "MiB", "GiB", "TiB", "PiB"}[exp]
	return string(s) + " " + suffix
}

// KHz renders a sample rate in Hz as whole kilohertz, e.g. 48000 -> "48k".
func KHz(hz int64) string {
	return strconv.FormatInt(hz/1000, 10) + "k"
}
