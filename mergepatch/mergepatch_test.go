package mergepatch

import (
	"testing"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	require.NoError(t, err, s)
	return node
}

// RFC 7396 Appendix A, plus an empty target.
var rfcCases = []struct {
	target, patch, want string
}{
	{`{"a":"b"}`, `{"a":"c"}`, `{"a":"c"}`},
	{`{"a":"b"}`, `{"b":"c"}`, `{"a":"b","b":"c"}`},
	{`{"a":"b"}`, `{"a":null}`, `{}`},
	{`{"a":"b","b":"c"}`, `{"a":null}`, `{"b":"c"}`},
	{`{"a":["b"]}`, `{"a":"c"}`, `{"a":"c"}`},
	{`{"a":"c"}`, `{"a":["b"]}`, `{"a":["b"]}`},
	{`{"a":{"b":"c"}}`, `{"a":{"b":"d","c":null}}`, `{"a":{"b":"d"}}`},
	{`{"a":[{"b":"c"}]}`, `{"a":[1]}`, `{"a":[1]}`},
	{`["a","b"]`, `["c","d"]`, `["c","d"]`},
	{`{"a":"b"}`, `["c"]`, `["c"]`},
	{`{"a":"foo"}`, `null`, `null`},
	{`{"a":"foo"}`, `"bar"`, `"bar"`},
	{`{"e":null}`, `{"a":1}`, `{"e":null,"a":1}`},
	{`[1,2]`, `{"a":"b","c":null}`, `{"a":"b"}`},
	{`{}`, `{"a":{"bb":{"ccc":null}}}`, `{"a":{"bb":{}}}`},
}

func TestMergeRFC(t *testing.T) {
	for _, tt := range rfcCases {
		t.Run(tt.target+" "+tt.patch, func(t *testing.T) {
			target := mustParse(t, tt.target)
			patch := mustParse(t, tt.patch)
			got := Merge(target, patch)
			assert.Equal(t, tt.want, encode.MustString(got))
			assert.Equal(t, encode.MustString(mustParse(t, tt.target)), encode.MustString(target), "target modified")
			assert.Equal(t, encode.MustString(mustParse(t, tt.patch)), encode.MustString(patch), "patch modified")

			MergeInPlace(target, patch)
			assert.Equal(t, tt.want, encode.MustString(target))
		})
	}
}

func TestMergeScalarTargets(t *testing.T) {
	for _, in := range []string{`null`, `true`, `3`, `"s"`, `[]`} {
		t.Run(in, func(t *testing.T) {
			got := Merge(mustParse(t, in), mustParse(t, `{"a":{"b":null,"c":1}}`))
			assert.Equal(t, `{"a":{"c":1}}`, encode.MustString(got))
		})
	}
}

func TestMergeKeepsOrder(t *testing.T) {
	target := mustParse(t, `{"z":1,"m":{"y":1,"x":2},"a":3}`)
	patch := mustParse(t, `{"q":0,"m":{"x":null,"w":4},"z":9}`)
	MergeInPlace(target, patch)
	assert.Equal(t, `{"z":9,"m":{"y":1,"w":4},"a":3,"q":0}`, encode.MustString(target))
}

func TestMergeNotShared(t *testing.T) {
	patch := mustParse(t, `{"a":{"b":[1]}}`)
	target := mustParse(t, `{}`)
	MergeInPlace(target, patch)
	arr, err := target.ResolvePointer("/a/b")
	require.NoError(t, err)
	arr.AppendValue(ir.FromInt(2))
	assert.Equal(t, `{"a":{"b":[1]}}`, encode.MustString(patch))
	assert.Equal(t, "/a/b/1", string(arr.Values[1].Pointer()))
}

func TestMergeSubtree(t *testing.T) {
	doc := mustParse(t, `{"spec":{"replicas":1,"image":"a"},"status":{}}`)
	spec, err := doc.ResolvePointer("/spec")
	require.NoError(t, err)
	MergeInPlace(spec, mustParse(t, `{"image":null,"replicas":2}`))
	assert.Equal(t, `{"spec":{"replicas":2},"status":{}}`, encode.MustString(doc))

	MergeInPlace(spec, mustParse(t, `"gone"`))
	assert.Equal(t, `{"spec":"gone","status":{}}`, encode.MustString(doc))
}
