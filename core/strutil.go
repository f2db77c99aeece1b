package core

// utoa converts an unsigned integer to a string without the fmt
// package. Lightweight alternative for the embedded targets.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// rightJustify space-pads s on the left to the given width. Strings
// already at or over the width are returned unchanged.
func rightJustify(s string, width int) string {
	if len(s) >= width {
		return s
	}
	buf := make([]byte, width)
	pad := width - len(s)
	for i := 0; i < pad; i++ {
		buf[i] = ' '
	}
	copy(buf[pad:], s)
	return string(buf)
}

// padRight space-pads s on the right to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	buf := make([]byte, width)
	copy(buf, s)
	for i := len(s); i < width; i++ {
		buf[i] = ' '
	}
	return string(buf)
}
