package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

const (
	// ErrOverflow is thrown when a counter leaves the unsigned 64-bit range.
	ErrOverflow = "arithmetic overflow"

	maxUint64Decimal = "18446744073709551615"
)

// MaxUint64 returns the largest value of unsigned 64-bit counters. NeoVM
// integers are unbounded, so the limit is enforced explicitly.
func MaxUint64() int {
	return std.Atoi(maxUint64Decimal, 10)
}

// CheckUint64 panics with ErrOverflow if v is not in [0, MaxUint64].
func CheckUint64(v int) {
	if v < 0 || v > MaxUint64() {
		panic(ErrOverflow)
	}
}

// CheckedAdd returns a+b or panics with ErrOverflow if the sum leaves the
// unsigned 64-bit range.
func CheckedAdd(a, b int) int {
	CheckUint64(a)
	CheckUint64(b)
	if a > MaxUint64()-b {
		panic(ErrOverflow)
	}
	return a + b
}

// CheckedMul returns a*b or panics with ErrOverflow if the product leaves the
// unsigned 64-bit range.
func CheckedMul(a, b int) int {
	CheckUint64(a)
	CheckUint64(b)
	if a != 0 && b > MaxUint64()/a {
		panic(ErrOverflow)
	}
	return a * b
}

// Pow10 returns 10^n within the unsigned 64-bit range.
func Pow10(n int) int {
	if n < 0 {
		panic("negative exponent")
	}
	res := 1
	for i := 0; i < n; i++ { //nolint:intrange // Not supported by NeoGo
		res = CheckedMul(res, 10)
	}
	return res
}
