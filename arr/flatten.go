package arr

import "reflect"

// IsArray reports whether x is a Go slice or array. A nil interface is not.
//
//	IsArray([]int{1})  // → true
//	IsArray("abc")     // → false
func IsArray(x any) bool {
	if x == nil {
		return false
	}
	k := reflect.TypeOf(x).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Flatten inlines nested slices and arrays of any element type, at any depth,
// into a single flat []any, preserving left-to-right order. Elements that are
// not sequences pass through unchanged. A non-sequence argument is returned
// as a one-element slice and nil as an empty one.
//
//	Flatten([]any{[]int{1, 2, 3}, []any{4, []any{5, []int{6}}}})
//	// → [1 2 3 4 5 6]
func Flatten(items any) []any {
	out := make([]any, 0)
	if items == nil {
		return out
	}

	// Each frame is a sequence and the position of the next element to
	// visit. Nested sequences push a frame instead of recursing.
	type frame struct {
		seq reflect.Value
		pos int
	}
	if !IsArray(items) {
		return append(out, items)
	}
	stack := []frame{{seq: reflect.ValueOf(items)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos >= top.seq.Len() {
			stack = stack[:len(stack)-1]
			continue
		}
		elem := top.seq.Index(top.pos).Interface()
		top.pos++
		if IsArray(elem) {
			stack = append(stack, frame{seq: reflect.ValueOf(elem)})
			continue
		}
		out = append(out, elem)
	}
	return out
}
