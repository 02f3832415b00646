package jsonpatch

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Kind int

const (
	KindAdd Kind = iota
	KindRemove
	KindReplace
	KindMove
	KindCopy
	KindTest
)

var kindNames = [...]string{
	KindAdd:     "add",
	KindRemove:  "remove",
	KindReplace: "replace",
	KindMove:    "move",
	KindCopy:    "copy",
	KindTest:    "test",
}

func Kinds() []Kind {
	return []Kind{KindAdd, KindRemove, KindReplace, KindMove, KindCopy, KindTest}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind maps an op discriminator to its Kind. Matching is case
// sensitive.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return 0, &DecodeError{
		Index: -1,
		Msg:   fmt.Sprintf("unknown variant `%s`, expected one of %s", s, kindList()),
	}
}

func kindList() string {
	return strings.Join(lo.Map(Kinds(), func(k Kind, _ int) string {
		return "`" + k.String() + "`"
	}), ", ")
}

// HasValue reports whether operations of kind k carry a value member.
func (k Kind) HasValue() bool {
	return k == KindAdd || k == KindReplace || k == KindTest
}

// HasFrom reports whether operations of kind k carry a from member.
func (k Kind) HasFrom() bool {
	return k == KindMove || k == KindCopy
}
