// Package operator implements builtin language operators, such as "<"
// (less-than), as functions that can be passed to higher order functions.
package operator

import (
    "golang.org/x/exp/constraints"
)

// Zero returns the zero value for any type.
func Zero[T any]() T {
    var t T
    return t
}

// LT returns a < b.
func LT[O constraints.Ordered](a O, b O) bool {
    return a < b
}
