package pointer

import (
	"errors"
	"strings"
)

// ErrInvalidPointer is returned for every resolution failure: malformed
// syntax, a missing member, a bad or out of range index, or stepping into a
// scalar.
var ErrInvalidPointer = errors.New("Invalid JSON Pointer")

const (
	EncodedTilde = "~0"
	EncodedSlash = "~1"
	Separator    = '/'

	// AppendToken addresses the nonexistent element after the last element
	// of an array.
	AppendToken = "-"
)

var (
	unescaper = strings.NewReplacer(EncodedSlash, "/", EncodedTilde, "~")
	escaper   = strings.NewReplacer("~", EncodedTilde, "/", EncodedSlash)
)

// Pointer is an RFC 6901 JSON Pointer. The empty Pointer refers to the
// whole document.
type Pointer string

// Root is the pointer to the whole document.
const Root Pointer = ""

// New builds a pointer from unescaped reference tokens.
func New(tokens ...string) Pointer {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteByte(Separator)
		b.WriteString(Escape(tok))
	}
	return Pointer(b.String())
}

func Escape(token string) string {
	return escaper.Replace(token)
}

func Unescape(token string) string {
	return unescaper.Replace(token)
}

func (p Pointer) String() string {
	return string(p)
}

func (p Pointer) IsRoot() bool {
	return p == Root
}

func (p Pointer) Validate() error {
	if p == Root || p[0] == Separator {
		return nil
	}
	return ErrInvalidPointer
}

// Tokens returns the unescaped reference tokens of p, none for the root.
func (p Pointer) Tokens() ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p == Root {
		return nil, nil
	}
	res := strings.Split(string(p[1:]), string(Separator))
	for i := range res {
		res[i] = Unescape(res[i])
	}
	return res, nil
}

// Split decomposes p at its final separator into the pointer to the parent
// and the unescaped last token. It fails when p has no separator, which
// includes the root.
func (p Pointer) Split() (Pointer, string, error) {
	i := strings.LastIndexByte(string(p), Separator)
	if i == -1 {
		return "", "", ErrInvalidPointer
	}
	return p[:i], Unescape(string(p[i+1:])), nil
}

// Append returns p extended by the unescaped token tok.
func (p Pointer) Append(tok string) Pointer {
	return p + Pointer(string(Separator)+Escape(tok))
}

// IsProperPrefixOf reports whether q addresses a location strictly inside
// the one p addresses.
func (p Pointer) IsProperPrefixOf(q Pointer) bool {
	return strings.HasPrefix(string(q), string(p)) &&
		len(q) > len(p) && q[len(p)] == Separator
}
