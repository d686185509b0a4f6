package math

// CeilInt returns ceil(a / b) for positive integers
func CeilInt(a, b int) int {
	if b == 0 {
		return 0
	}
	res := a / b
	if a%b != 0 {
		res++
	}
	return res
}

// MinInt returns the smaller of a and b
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt returns the larger of a and b
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
