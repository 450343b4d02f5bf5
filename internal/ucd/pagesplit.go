package ucd

import "fmt"

// DefaultPageSize is the page-splitter's default maximum escape-token count
// per C string literal page (§4.10 item 5).
const DefaultPageSize = 32767

// PaginateBlob splits blob into consecutive pages of at most pageSize
// \xNN escape tokens each, preserving the byte sequence exactly across
// page boundaries, and renders each page as the body of a C string
// literal (without the surrounding quotes).
func PaginateBlob(blob []byte, pageSize int) []string {
    if pageSize <= 0 {
        pageSize = DefaultPageSize
    }

    var pages []string
    for start := 0; start < len(blob); start += pageSize {
        end := start + pageSize
        if end > len(blob) {
            end = len(blob)
        }
        pages = append(pages, escapeLiteral(blob[start:end]))
    }
    if len(pages) == 0 {
        pages = []string{""}
    }
    return pages
}

func escapeLiteral(page []byte) string {
    var b []byte
    for _, c := range page {
        b = append(b, []byte(fmt.Sprintf("\\x%02x", c))...)
    }
    return string(b)
}
