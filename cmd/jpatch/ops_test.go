package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/jpatch/jsonpatch"

	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpLister(t *testing.T) {
	p, err := jsonpatch.DecodePatch([]byte(`[
		{"op": "add", "path": "/a/-", "value": {"b": [1, 2.50]}},
		{"op": "remove", "path": "/x~1y"},
		{"op": "replace", "path": "", "value": null},
		{"op": "move", "from": "/a", "path": "/b"},
		{"op": "copy", "from": "/b", "path": "/c"},
		{"op": "test", "path": "/c", "value": "s"}
	]`))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, p.ApplyToSink(&opLister{w: buf}))
	expected := `  0 add     "/a/-" {"b":[1,2.50]}
  1 remove  "/x~1y"
  2 replace "" null
  3 move    "/a" -> "/b"
  4 copy    "/b" -> "/c"
  5 test    "/c" == "s"
`
	assert.Equal(t, expected, buf.String())
}

func TestCheckStdin(t *testing.T) {
	err := checkStdin(false, "-", []string{"a.json", "-"})
	assert.True(t, errors.Is(err, cli.ErrUsage))
	assert.NoError(t, checkStdin(true, "-", []string{"-"}))
	assert.NoError(t, checkStdin(false, "p.json", []string{"-"}))
	assert.NoError(t, checkStdin(false, "-", []string{"a.json"}))
}

func TestInputs(t *testing.T) {
	assert.Equal(t, []string{"-"}, inputs(nil))
	assert.Equal(t, []string{"a", "b"}, inputs([]string{"a", "b"}))
}
