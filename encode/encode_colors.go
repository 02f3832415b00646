package encode

import (
	"github.com/signadot/jpatch/ir"

	"github.com/fatih/color"
)

// Colorable names the part of the output a colour applies to.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// Colors maps output parts to the functions that colour them. Parts
// missing from Map use Default.
type Colors struct {
	Default func(string) string
	Map     map[Colorable]func(string) string
}

// NewColors gives the palette used for terminal output.
func NewColors() *Colors {
	punct := sprint(color.New(color.FgHiBlack))
	res := &Colors{
		Default: func(s string) string { return s },
		Map: map[Colorable]func(string) string{
			{ir.ObjectType, FieldColor}: sprint(color.New(color.FgBlue, color.Bold)),
			{ir.StringType, ValueColor}: sprint(color.New(color.FgGreen)),
			{ir.NumberType, ValueColor}: sprint(color.RGB(128, 216, 236)),
			{ir.BoolType, ValueColor}:   sprint(color.New(color.FgCyan)),
			{ir.NullType, ValueColor}:   sprint(color.New(color.FgMagenta)),
		},
	}
	for _, t := range []ir.Type{ir.ObjectType, ir.ArrayType} {
		res.Map[Colorable{t, SepColor}] = punct
	}
	return res
}

func sprint(c *color.Color) func(string) string {
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string) string {
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	return c.Default
}
