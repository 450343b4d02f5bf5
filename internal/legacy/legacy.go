// Package legacy carries small utilities preserved from the teacher's
// original retrieved snapshot that this compiler still exercises directly.
package legacy

import (
    "fmt"
    "io"

    "github.com/Linaro1985/utf8rewind/must"
)

// WithCloser opens a resource with opener, runs do against it, and closes it
// unconditionally afterwards -- including when do panics, which WithCloser
// recovers via must.CatchFunc and folds into the returned error. cmd/ucdgen
// uses this to open each UCD input file, parse it, and guarantee the file is
// closed even if a parser panics partway through.
func WithCloser[T io.Closer](opener func() (T, error), do func(v T) error) error {
    var zero T

    f, err := opener()
    if err != nil { return fmt.Errorf("WithCloser[%T] open error: %w", zero, err) }

    doer := must.CatchFunc(func() error { return do(f) })
    err, panicErr := doer()
    if err != nil {
        err = fmt.Errorf("WithCloser[%T] error: %w", zero, err)
    } else if panicErr != nil {
        err = fmt.Errorf("WithCloser[%T] error: panic: %w", zero, panicErr)
    }

    errClose := f.Close()
    if errClose != nil {
        err = fmt.Errorf("WithCloser[%T] close error: %v; %w", zero, errClose, err)
    }

    return err
}
