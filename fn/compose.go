package fn

import "github.com/hasbyte1/go-seqops/arr"

// Flow returns a function that passes its argument through fns from left
// to right, each output feeding the next input. With no fns it returns its
// argument.
//
//	getFinal := fn.Flow(discount, tax) // tax(discount(x))
func Flow[T any](fns ...func(T) T) func(T) T {
	steps := arr.Copy(fns)
	return func(x T) T {
		return arr.Reduce(steps, func(acc T, f func(T) T, _ int) T { return f(acc) }, x)
	}
}

// Compose is [Flow] with fns applied from right to left.
//
//	getFinal := fn.Compose(tax, discount) // tax(discount(x))
func Compose[T any](fns ...func(T) T) func(T) T {
	return Flow(arr.Reverse(fns)...)
}

// Pipe chains two functions whose types differ: Pipe(f, g)(x) == g(f(x)).
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}
