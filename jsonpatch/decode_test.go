package jsonpatch

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/signadot/jpatch/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOperationErrors(t *testing.T) {
	tests := []struct {
		in  string
		msg string
	}{
		{`{"path":"/a"}`, "missing field `op`"},
		{`{"op":"remove"}`, "missing field `path`"},
		{`{"op":"add","path":"/a"}`, "missing field `value`"},
		{`{"op":"test","path":"/a"}`, "missing field `value`"},
		{`{"op":"move","path":"/a"}`, "missing field `from`"},
		{`{"op":"copy","path":"/a"}`, "missing field `from`"},
		{`{"op":"add","path":null,"value":1}`, "invalid type: null, expected a string"},
		{`{"op":"add","path":1,"value":1}`, "invalid type: integer `1`, expected a string"},
		{`{"op":"copy","from":true,"path":"/a"}`, "invalid type: boolean `true`, expected a string"},
		{`{"op":"move","from":{},"path":"/a"}`, "invalid type: map, expected a string"},
		{`{"op":["add"],"path":"/a"}`, "invalid type: sequence, expected a string"},
		{`{"op":"spam","path":"/a"}`, "unknown variant `spam`, expected one of `add`, `remove`, `replace`, `move`, `copy`, `test`"},
		{`{"op":"ADD","path":"/a","value":1}`, "unknown variant `ADD`, expected one of `add`, `remove`, `replace`, `move`, `copy`, `test`"},
		{`1.5`, "invalid type: floating point `1.5`, expected an operation object"},
		{`"x"`, `invalid type: string "x", expected an operation object`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := DecodeOperation([]byte(tt.in))
			require.Error(t, err)
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.msg, err.Error())
			assert.Equal(t, -1, de.Index)
			assert.False(t, errors.Is(err, ErrInvalidPointer))
			assert.False(t, errors.Is(err, ErrInvalidTest))
		})
	}
}

func TestDecodeOperation(t *testing.T) {
	op, err := DecodeOperation([]byte(`{"op":"add","path":"/a","value":null,"extra":[1]}`))
	require.NoError(t, err)
	add, ok := op.(*OpAdd)
	require.True(t, ok, "got %T", op)
	assert.Equal(t, "/a", string(add.Path))
	assert.True(t, add.Value.IsNull())

	op, err = DecodeOperation([]byte("op: copy\nfrom: /x\npath: /y\n"), parse.ParseYAML())
	require.NoError(t, err)
	assert.Equal(t, &OpCopy{From: "/x", Path: "/y"}, op)
}

func TestDecodePatchErrors(t *testing.T) {
	_, err := DecodePatch([]byte(`{"op":"remove","path":"/a"}`))
	require.Error(t, err)
	assert.Equal(t, "invalid type: map, expected a sequence", err.Error())

	_, err = DecodePatch([]byte(`[{"op":"remove","path":"/a"},{"op":"remove"}]`))
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Index)
	assert.Equal(t, "missing field `path`", de.Error())

	_, err = DecodePatch([]byte(`[{"op":"remove","path":"/a"},{"op":"nope","path":"/a"}]`))
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 1, de.Index)

	_, err = DecodePatch([]byte(`[{"op":"remove",`))
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrParse)
	assert.False(t, errors.As(err, &de))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("move")))
	assert.Equal(t, KindMove, k)
	assert.Error(t, k.UnmarshalText([]byte("Move")))
	assert.Equal(t, "Kind(17)", Kind(17).String())
}

func TestMarshal(t *testing.T) {
	p := mustPatch(t, `[
		{"path":"/a","op":"move","from":"/b"},
		{"value":[1],"op":"add","path":"/c"},
		{"op":"remove","path":"/d"},
		{"op":"test","path":"/e","value":{"z":1,"a":"é<"}}
	]`)
	d, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`[{"op":"move","from":"/b","path":"/a"},{"op":"add","path":"/c","value":[1]},{"op":"remove","path":"/d"},{"op":"test","path":"/e","value":{"z":1,"a":"é<"}}]`,
		string(d))

	type wrapper struct {
		Patch Patch `json:"patch"`
	}
	d, err = json.Marshal(wrapper{Patch: p[1:3]})
	require.NoError(t, err)
	assert.JSONEq(t, `{"patch":[{"op":"add","path":"/c","value":[1]},{"op":"remove","path":"/d"}]}`, string(d))

	var back wrapper
	require.NoError(t, json.Unmarshal(d, &back))
	assert.Equal(t, 2, back.Patch.Len())
	assert.Equal(t, KindRemove, back.Patch[1].Kind())

	d, err = (&OpReplace{Path: "/x"}).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"op":"replace","path":"/x","value":null}`, string(d))
}
