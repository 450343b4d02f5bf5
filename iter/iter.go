// Package iter implements a small pull-based lazy iterator: a value of type
// It[X] is a function that returns the next X and whether one was available.
package iter

import (
    "github.com/Linaro1985/utf8rewind/operator"
    "golang.org/x/exp/maps"
)

// Pair is any Key, Value pair produced by FromMap.
type Pair[K comparable, V any] struct {
    Key   K
    Value V
}

// It is a pull-based iterator over a sequence of X: each call returns the
// next element and true, or the zero value and false once exhausted.
type It[X any] func() (X, bool)

// FromMap returns an iterator over a map's (key, value) pairs. The map's
// keys are snapshotted once, up front, via golang.org/x/exp/maps.Keys, so
// keys added while iterating are not yielded; each value is read from the
// map when its pair is pulled, so a value changed before then is seen.
func FromMap[X comparable, Y any](kvs map[X]Y) It[Pair[X, Y]] {
    rest := maps.Keys(kvs)
    zero := operator.Zero[Pair[X, Y]]()

    return func() (Pair[X, Y], bool) {
        if len(rest) == 0 {
            return zero, false
        }

        key := rest[0]
        rest = rest[1:]
        return Pair[X, Y]{
            Key:   key,
            Value: kvs[key],
        }, true
    }
}

// AppendToSlice drains xs, appending each element to dest.
func AppendToSlice[X any](dest []X, xs It[X]) []X {
    for {
        x, ok := xs()
        if !ok {
            break
        }
        dest = append(dest, x)
    }
    return dest
}

// ToSlice drains xs into a new slice.
func ToSlice[X any](xs It[X]) []X {
    return AppendToSlice(make([]X, 0), xs)
}
