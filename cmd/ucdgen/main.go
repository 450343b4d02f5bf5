// Command ucdgen compiles the canonical Unicode Character Database text
// files into the C lookup tables and case-mapping fixture consumed by the
// runtime library. See internal/ucd for the pipeline itself.
package main

import (
    "bufio"
    "bytes"
    "flag"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "time"

    "github.com/Linaro1985/utf8rewind/internal/legacy"
    "github.com/Linaro1985/utf8rewind/internal/ucd"
    "github.com/Linaro1985/utf8rewind/ks"
    "github.com/Linaro1985/utf8rewind/must"
)

func main() {
    var (
        dataDir   = flag.String("data", "data", "directory containing UnicodeData.txt, Blocks.txt, SpecialCasing.txt")
        outC      = flag.String("out-c", "source/unicodedatabase.c", "path to write the generated C source")
        outFix    = flag.String("out-fixture", "testdata/CaseMapping.txt", "path to write the case-mapping fixture")
        header    = flag.String("header", "unicodedatabase.h", "runtime header included by the generated C source")
        pageSize  = flag.Int("page-size", ucd.DefaultPageSize, "maximum bytes per emitted C string-literal fragment")
        verbose   = flag.Bool("verbose", false, "enable interner and pass diagnostics")
        lineLimit = flag.Int("line-limit", 0, "stop parsing UnicodeData.txt after this many lines (0 = unlimited)")
        entryLimit = flag.Int("entry-limit", 0, "stop after this many parsed entries (0 = unlimited)")
        entrySkip  = flag.Int("entry-skip", 0, "skip this many parsed entries before emitting (debugging)")
        query     = flag.String("query", "", "hex codepoint to dump after building the database")
    )
    flag.Parse()

    if err := run(*dataDir, *outC, *outFix, *header, *pageSize, *verbose, *lineLimit, *entryLimit, *entrySkip, *query); err != nil {
        fmt.Fprintln(os.Stderr, "ucdgen:", err)
        os.Exit(1)
    }
}

func run(dataDir, outC, outFix, header string, pageSize int, verbose bool, lineLimit, entryLimit, entrySkip int, query string) error {
    start := time.Now()

    db := ucd.NewDatabase()
    db.Verbose = verbose

    if err := timeit(verbose, "parse Blocks.txt", func() error {
        return legacy.WithCloser(
            func() (*os.File, error) { return os.Open(filepath.Join(dataDir, "Blocks.txt")) },
            func(f *os.File) error {
                errs := ucd.ParseBlocks(bufio.NewReader(f), "Blocks.txt", db)
                return firstFatal(errs)
            },
        )
    }); err != nil {
        return &ucd.IOError{Op: "parse", Path: "Blocks.txt", Err: err}
    }

    if err := timeit(verbose, "parse UnicodeData.txt", func() error {
        return legacy.WithCloser(
            func() (*os.File, error) { return os.Open(filepath.Join(dataDir, "UnicodeData.txt")) },
            func(f *os.File) error {
                r := limitedLineReader(bufio.NewReader(f), lineLimit)
                errs := ucd.ParseUnicodeData(r, "UnicodeData.txt", db)
                if len(errs) > 0 && entryLimit == 0 {
                    return firstFatal(errs)
                }
                return nil
            },
        )
    }); err != nil {
        return &ucd.IOError{Op: "parse", Path: "UnicodeData.txt", Err: err}
    }

    db.SortRecords()
    db.ApplyEntryWindow(entrySkip, entryLimit)

    // ResolveBlocks panics with an *ucd.InvariantError (via must.Check) if
    // the sort-order or block-coverage assumptions the rest
    // of the pipeline depends on don't hold. Caught here and turned into an
    // ordinary error so a broken invariant never shows up as a bare Go
    // panic and stack trace to a ucdgen caller.
    if _, err := must.CatchFunc(func() struct{} {
        db.ResolveBlocks()
        db.ExpandRanges()
        return struct{}{}
    })(); err != nil {
        return err
    }

    if err := timeit(verbose, "apply SpecialCasing.txt", func() error {
        return legacy.WithCloser(
            func() (*os.File, error) { return os.Open(filepath.Join(dataDir, "SpecialCasing.txt")) },
            func(f *os.File) error {
                conditional, errs := ucd.ApplySpecialCasing(bufio.NewReader(f), "SpecialCasing.txt", db)
                if verbose {
                    fmt.Fprintf(os.Stderr, "special casing: %d conditional entries skipped\n", conditional)
                }
                return firstFatal(errs)
            },
        )
    }); err != nil {
        return &ucd.IOError{Op: "parse", Path: "SpecialCasing.txt", Err: err}
    }

    db.ResolveDecompositions()
    db.ResolveComposition()
    db.EncodeCasing()

    if verbose {
        fmt.Fprintf(os.Stderr, "records: %d, blocks: %d, blob requests: %d, blob bytes: %d\n",
            len(db.Records), len(db.Blocks), db.Blob.Requests(), len(db.Blob.Bytes()))
        for _, d := range db.Diagnostics {
            fmt.Fprintln(os.Stderr, ks.WrapBlock("diagnostic: "+d.Error(), 100))
        }
    }

    if query != "" {
        dumpQuery(db, query)
    }

    timestamp := start.UTC().Format(time.RFC3339)
    cSource := db.EmitC(header, pageSize, os.Args[1:], timestamp)
    fixture := db.EmitCaseFixture(os.Args[1:], timestamp)

    if err := writeFileAtomic(outC, []byte(cSource)); err != nil {
        return &ucd.IOError{Op: "write", Path: outC, Err: err}
    }
    if err := writeFileAtomic(outFix, []byte(fixture)); err != nil {
        return &ucd.IOError{Op: "write", Path: outFix, Err: err}
    }

    if verbose {
        fmt.Fprintf(os.Stderr, "done in %s\n", time.Since(start))
    }
    return nil
}

// timeit wraps a pass with a printed duration when verbose, mirroring the
// teacher's own maketables-style pass timing.
func timeit(verbose bool, name string, f func() error) error {
    start := time.Now()
    err := f()
    if verbose {
        fmt.Fprintf(os.Stderr, "%s: %s\n", name, time.Since(start))
    }
    return err
}

func firstFatal(errs []error) error {
    if len(errs) == 0 {
        return nil
    }
    return errs[0]
}

// limitedLineReader returns r unchanged when limit <= 0; otherwise it copies
// at most limit lines into an in-memory buffer, bounding how much of a
// large UnicodeData.txt a debugging run actually parses.
func limitedLineReader(r *bufio.Reader, limit int) io.Reader {
    if limit <= 0 {
        return r
    }

    var buf bytes.Buffer
    scanner := bufio.NewScanner(r)
    for n := 0; n < limit && scanner.Scan(); n++ {
        buf.Write(scanner.Bytes())
        buf.WriteByte('\n')
    }
    return &buf
}

func dumpQuery(db *ucd.Database, query string) {
    cp, err := parseQueryCodepoint(query)
    if err != nil {
        fmt.Fprintf(os.Stderr, "query: invalid codepoint %q: %s\n", query, err)
        return
    }
    r, ok := db.Lookup(cp)
    if !ok {
        fmt.Fprintf(os.Stderr, "query: U+%04X: no record\n", cp)
        return
    }
    fmt.Fprintf(os.Stdout, "query: U+%04X %s\n", cp, r.Name)
    fmt.Fprintf(os.Stdout, "query: category=%s bidi=%s decompositionType=%s numericType=%s\n",
        r.GeneralCategory.CIdentifier(), r.BidiClass.CIdentifier(), r.DecompositionType.CIdentifier(), r.NumericType.CIdentifier())
    fmt.Fprintf(os.Stdout, "query: NFD=%U\n", r.DecomposedNFD)
    fmt.Fprintf(os.Stdout, "query: NFKD=%U\n", r.DecomposedNFKD)
}

func parseQueryCodepoint(s string) (rune, error) {
    var v uint32
    _, err := fmt.Sscanf(s, "%x", &v)
    return rune(v), err
}

// writeFileAtomic writes data to a temp file in path's directory and
// renames it into place, so a write failure partway through can never
// leave a half-written output file on disk (§5, §7).
func writeFileAtomic(path string, data []byte) error {
    dir := filepath.Dir(path)
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return err
    }

    tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
    if err != nil {
        return err
    }
    tmpName := tmp.Name()

    if _, err := tmp.Write(data); err != nil {
        tmp.Close()
        os.Remove(tmpName)
        return err
    }
    if err := tmp.Close(); err != nil {
        os.Remove(tmpName)
        return err
    }
    return os.Rename(tmpName, path)
}
