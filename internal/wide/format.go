package wide

// String renders x in base 10 with no leading zeros, a leading '-' only for
// negative values and "0" for zero. Each call returns a fresh string, so it
// is safe to call concurrently.
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}
	var buf [maxDigits + 1]byte
	i := len(buf)
	neg := x.Sign() < 0
	// Digits are peeled off without negating x so that MinInt needs no
	// special case: the remainder carries the sign of x.
	for !x.IsZero() {
		q, r := quoRem(x, ten)
		d := r.Int64()
		if d < 0 {
			d = -d
		}
		i--
		buf[i] = byte('0' + d)
		x = q
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// FormatDecimal is String as a function value, for use with mapping helpers.
func FormatDecimal(x Int) string { return x.String() }
