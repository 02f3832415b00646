package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jpatch/format"
	"github.com/signadot/jpatch/ir"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	UseNumber:              true,
	DisallowUnknownFields:  false,
	ValidateJsonRawMessage: true,
}.Froze()

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %w: %s", ErrParse, format.ErrBadFormat, pOpts.format)
	}
}

func parseJSON(d []byte) (*ir.Node, error) {
	iter := jsoniter.ParseBytes(jsonAPI, d)
	if iter.WhatIsNext() == jsoniter.InvalidValue {
		if len(d) == 0 || errors.Is(iter.Error, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return nil, fmt.Errorf("%w: expected a JSON value", ErrParse)
	}
	res := readJSON(iter)
	if err := iterErr(iter); err != nil {
		return nil, err
	}
	next := iter.WhatIsNext()
	if err := iterErr(iter); err != nil {
		return nil, err
	}
	if next != jsoniter.InvalidValue || iter.Error == nil {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrParse)
	}
	return res, nil
}

func iterErr(iter *jsoniter.Iterator) error {
	if iter.Error == nil || errors.Is(iter.Error, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrParse, iter.Error)
}

func readJSON(iter *jsoniter.Iterator) *ir.Node {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return ir.Null()
	case jsoniter.BoolValue:
		return ir.FromBool(iter.ReadBool())
	case jsoniter.NumberValue:
		text := string(iter.ReadNumber())
		if !validNumber(text) {
			iter.ReportError("readJSON", fmt.Sprintf("invalid number %q", text))
			return ir.Null()
		}
		return ir.FromNumber(text)
	case jsoniter.StringValue:
		return ir.FromString(iter.ReadString())
	case jsoniter.ArrayValue:
		res := ir.FromSlice(nil)
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			res.AppendValue(readJSON(iter))
			return iterErr(iter) == nil
		})
		return res
	case jsoniter.ObjectValue:
		res := ir.FromKeyVals(nil)
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			res.SetField(field, readJSON(iter))
			return iterErr(iter) == nil
		})
		return res
	default:
		iter.ReportError("readJSON", "expected a JSON value")
		return ir.Null()
	}
}

// validNumber checks text against the JSON number grammar, which is
// stricter than what the iterator accepts.
func validNumber(text string) bool {
	i, n := 0, len(text)
	if i < n && text[i] == '-' {
		i++
	}
	switch {
	case i < n && text[i] == '0':
		i++
	case i < n && text[i] >= '1' && text[i] <= '9':
		for i < n && isDigit(text[i]) {
			i++
		}
	default:
		return false
	}
	if i < n && text[i] == '.' {
		i++
		if i == n || !isDigit(text[i]) {
			return false
		}
		for i < n && isDigit(text[i]) {
			i++
		}
	}
	if i < n && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < n && (text[i] == '+' || text[i] == '-') {
			i++
		}
		if i == n || !isDigit(text[i]) {
			return false
		}
		for i < n && isDigit(text[i]) {
			i++
		}
	}
	return i == n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
