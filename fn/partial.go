package fn

import "github.com/hasbyte1/go-seqops/arr"

// Partial returns a function that calls f with fixed followed by the
// arguments it receives.
//
//	sum := func(xs ...int) int { ... }
//	plus10 := fn.Partial(sum, 10)
//	plus10(1, 2) // → 13
func Partial[A, R any](f func(...A) R, fixed ...A) func(...A) R {
	bound := arr.Copy(fixed)
	return func(args ...A) R {
		return f(arr.Concat(bound, args)...)
	}
}

// Partial1 fixes the first argument of a binary function.
//
//	plus2 := fn.Partial1(func(x, y int) int { return x + y }, 2)
//	plus2(10) // → 12
func Partial1[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// SpreadArg converts a function that takes a slice into one that takes the
// same elements as variadic arguments.
//
//	spreadSum := fn.SpreadArg(sumSlice)
//	spreadSum(1, 2, 3) // → 6
func SpreadArg[A, R any](f func([]A) R) func(...A) R {
	return func(args ...A) R {
		return f(arr.Copy(args))
	}
}

// ReverseArgs returns a function that calls f with its arguments in reverse
// order.
func ReverseArgs[A, R any](f func(...A) R) func(...A) R {
	return func(args ...A) R {
		return f(arr.Reverse(args)...)
	}
}

// Flip swaps the arguments of a binary function.
//
//	divide := func(x, y float64) float64 { return x / y }
//	percentToDec := fn.Partial1(fn.Flip(divide), 100)
//	percentToDec(25) // → 0.25
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R { return f(a, b) }
}
