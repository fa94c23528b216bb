// Package fn provides combinators that build new functions from existing
// ones: partial application, argument reordering, key extraction and
// left-to-right or right-to-left composition.
//
//	add      := func(x, y int) int { return x + y }
//	plus2    := fn.Partial1(add, 2)
//	plus2(10) // → 12
//
//	getPrice := func(p map[string]float64) float64 {
//	    return fn.Pluck("price", p).OrElse(0)
//	}
//	discount := func(x float64) float64 { return x * 0.9 }
//	tax      := func(x float64) float64 { return x + x*0.075 }
//	final    := fn.Pipe(getPrice, fn.Flow(discount, tax))
//	arr.Map(products, final)
//
// Combinators assume the functions they wrap have no side effects whose
// ordering matters.
package fn
