package iter_test

import (
    "sort"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/Linaro1985/utf8rewind/iter"
)

// fromSlice is a test-local helper building an It[X] from a slice, since the
// package itself only needs to go the other way (ToSlice/AppendToSlice).
func fromSlice[X any](xs []X) iter.It[X] {
    rest := xs
    return func() (X, bool) {
        var zero X
        if len(rest) == 0 {
            return zero, false
        }
        x := rest[0]
        rest = rest[1:]
        return x, true
    }
}

func TestFromMap(t *testing.T) {
    m := map[string]int{"a": 1, "b": 2, "c": 3}
    pairs := iter.ToSlice(iter.FromMap(m))

    assert.Len(t, pairs, 3)

    sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
    assert.Equal(t, []iter.Pair[string, int]{
        {Key: "a", Value: 1},
        {Key: "b", Value: 2},
        {Key: "c", Value: 3},
    }, pairs)
}

func TestFromMap_empty(t *testing.T) {
    m := map[string]int{}
    pairs := iter.ToSlice(iter.FromMap(m))
    assert.Len(t, pairs, 0)
}

func TestToSlice(t *testing.T) {
    xs := fromSlice([]int{1, 2, 3})
    assert.Equal(t, []int{1, 2, 3}, iter.ToSlice(xs))
}

func TestToSlice_empty(t *testing.T) {
    xs := fromSlice([]int{})
    assert.Equal(t, []int{}, iter.ToSlice(xs))
}

func TestAppendToSlice(t *testing.T) {
    dest := []int{1, 2, 3}
    xs := fromSlice([]int{4, 5, 6})
    assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, iter.AppendToSlice(dest, xs))
}

func TestAppendToSlice_emptySource(t *testing.T) {
    dest := []int{1, 2, 3}
    xs := fromSlice([]int{})
    assert.Equal(t, []int{1, 2, 3}, iter.AppendToSlice(dest, xs))
}
