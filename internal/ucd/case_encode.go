package ucd

// EncodeCasing interns the UTF-8 encoding of every non-empty case-mapping
// list on records with Codepoint >= 0x7F, storing the resulting offsets
// (§4.8). ASCII is excluded because the runtime handles it directly
// without consulting the table.
func (db *Database) EncodeCasing() {
    for _, r := range db.Records {
        if r.Codepoint < 0x7F {
            continue
        }
        if len(r.Uppercase) > 0 {
            r.OffsetUppercase = db.Blob.InternUTF8WithNUL(string(r.Uppercase))
        }
        if len(r.Lowercase) > 0 {
            r.OffsetLowercase = db.Blob.InternUTF8WithNUL(string(r.Lowercase))
        }
        if len(r.Titlecase) > 0 {
            r.OffsetTitlecase = db.Blob.InternUTF8WithNUL(string(r.Titlecase))
        }
    }
}
