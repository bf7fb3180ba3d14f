package bank

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// QuestionID derives a stable content hash for a question so recurring
// questions can be correlated across attempts. The bank is a flat array
// with no primary key and may be re-ordered between loads, so identity
// comes from content alone: type, the full original question text
// (disambiguator included), and the joined pairs or options. No
// randomness, no memory addresses — the ID survives process restarts.
func QuestionID(q *Question) string {
	var b strings.Builder
	b.WriteString(string(q.Type))
	b.WriteByte('|')
	b.WriteString(q.Text)
	b.WriteByte('|')

	if q.Type == TypeDragDrop {
		for i, p := range q.Pairs {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(p.Left)
			b.WriteString("→")
			b.WriteString(p.Right)
		}
	} else {
		b.WriteString(strings.Join(q.Options, "|"))
	}

	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
