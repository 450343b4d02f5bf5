package ucd

import (
    "bufio"
    "io"
    "strings"
)

// ParseBlocks reads Blocks.txt from r and appends one Block per data line
// to db.Blocks, in file order; Blocks.txt is already range-sorted so no
// sorting is applied here (§4.2).
func ParseBlocks(r io.Reader, filename string, db *Database) []error {
    var errs []error

    scanner := bufio.NewScanner(r)
    lineNo := 0
    for scanner.Scan() {
        lineNo++
        line := strings.TrimSpace(scanner.Text())
        if line == "" || strings.HasPrefix(line, "#") {
            continue
        }

        block, err := parseBlockLine(filename, lineNo, line)
        if err != nil {
            errs = append(errs, err)
            continue
        }
        db.Blocks = append(db.Blocks, block)
    }

    return errs
}

func parseBlockLine(file string, lineNo int, line string) (*Block, error) {
    parts := strings.SplitN(line, ";", 2)
    if len(parts) != 2 {
        return nil, &ParseError{File: file, Line: lineNo, Field: "block-line", Value: line}
    }

    rangeField := strings.TrimSpace(parts[0])
    name := strings.TrimSpace(parts[1])

    ends := strings.SplitN(rangeField, "..", 2)
    if len(ends) != 2 {
        return nil, &ParseError{File: file, Line: lineNo, Field: "range", Value: rangeField}
    }

    start, err := parseHexCodepoint(ends[0])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "range start", Value: ends[0]}
    }
    end, err := parseHexCodepoint(ends[1])
    if err != nil {
        return nil, &ParseError{File: file, Line: lineNo, Field: "range end", Value: ends[1]}
    }

    return &Block{Start: start, End: end, Name: name}, nil
}
