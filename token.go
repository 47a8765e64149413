package lzss

import "fmt"

// TokenKind tells a literal token from a back-reference.
type TokenKind uint8

const (
	Literal TokenKind = iota // One raw byte.
	Match                    // Copy Length bytes starting Offset bytes back.
)

// Token is one encoded unit of a stream.
type Token struct {
	Kind    TokenKind
	Literal byte // Literal only.
	Offset  int  // Match only, 1..2^EI.
	Length  int  // Match only, P..MaxMatch.
}

// String renders a literal as a quoted byte and a match as <length,offset>.
func (t Token) String() string {
	if t.Kind == Literal {
		return fmt.Sprintf("%q", t.Literal)
	}

	return fmt.Sprintf("<%d,%d>", t.Length, t.Offset)
}
