package jsonpatch

import (
	"errors"
	"testing"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir"

	"github.com/google/go-cmp/cmp"
)

func TestEmptyPatch(t *testing.T) {
	for _, in := range []string{`5`, `null`, `"s"`, `{"a":[1]}`, `[]`} {
		t.Run(in, func(t *testing.T) {
			doc := mustParse(t, in)
			for _, p := range []Patch{nil, {}, mustPatch(t, `[]`)} {
				if !p.IsEmpty() || p.Len() != 0 {
					t.Fatalf("patch %v not empty", p)
				}
				if err := p.ApplyInPlace(doc); err != nil {
					t.Fatal(err)
				}
				if got := encode.MustString(doc); got != in {
					t.Errorf("got %s want %s", got, in)
				}
			}
		})
	}
}

func TestSequentialAbort(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":2}`)
	p := mustPatch(t, `[
		{"op":"replace","path":"/a","value":10},
		{"op":"test","path":"/b","value":3},
		{"op":"add","path":"/c","value":4}
	]`)
	if p.Len() != 3 {
		t.Fatalf("len %d", p.Len())
	}
	err := p.ApplyInPlace(doc)
	if err != ErrInvalidTest {
		t.Fatalf("got %v want %v", err, ErrInvalidTest)
	}
	if err.Error() != "Test Operation Failed" {
		t.Errorf("message %q", err.Error())
	}
	if got := encode.MustString(doc); got != `{"a":10,"b":2}` {
		t.Errorf("got %s", got)
	}
}

func TestApplyToCopy(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":1}}`)
	ok := mustPatch(t, `[{"op":"add","path":"/a/c","value":2}]`)
	res, err := ok.ApplyToCopy(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(res); got != `{"a":{"b":1,"c":2}}` {
		t.Errorf("result %s", got)
	}
	if got := encode.MustString(doc); got != `{"a":{"b":1}}` {
		t.Errorf("input changed to %s", got)
	}

	bad := mustPatch(t, `[{"op":"remove","path":"/a/b"},{"op":"remove","path":"/x"}]`)
	res, err = bad.ApplyToCopy(doc)
	if err != ErrInvalidPointer {
		t.Fatalf("got %v", err)
	}
	if res != nil {
		t.Errorf("result on failure: %s", encode.MustString(res))
	}
	if got := encode.MustString(doc); got != `{"a":{"b":1}}` {
		t.Errorf("input changed to %s", got)
	}

	sub := doc.Values[0]
	res, err = ok.ApplyToCopy(sub)
	if err == nil {
		t.Fatalf("expected error patching %s, got %s", encode.MustString(sub), encode.MustString(res))
	}
	res, err = Patch{&OpAdd{Path: "/c", Value: ir.FromInt(2)}}.ApplyToCopy(sub)
	if err != nil {
		t.Fatal(err)
	}
	if res.Parent != nil || res.Pointer() != "" {
		t.Errorf("copy of subtree still attached at %q", res.Pointer())
	}
}

type recordingSink struct {
	got    []Kind
	failAt int
}

func (s *recordingSink) record(k Kind) error {
	s.got = append(s.got, k)
	if len(s.got) == s.failAt {
		return errors.New("refused")
	}
	return nil
}

func (s *recordingSink) PatchAdd(op *OpAdd) error         { return s.record(op.Kind()) }
func (s *recordingSink) PatchRemove(op *OpRemove) error   { return s.record(op.Kind()) }
func (s *recordingSink) PatchReplace(op *OpReplace) error { return s.record(op.Kind()) }
func (s *recordingSink) PatchMove(op *OpMove) error       { return s.record(op.Kind()) }
func (s *recordingSink) PatchCopy(op *OpCopy) error       { return s.record(op.Kind()) }
func (s *recordingSink) PatchTest(op *OpTest) error       { return s.record(op.Kind()) }

const allKinds = `[
	{"op":"test","path":"/a","value":1},
	{"op":"add","path":"/b","value":2},
	{"op":"copy","from":"/b","path":"/c"},
	{"op":"move","from":"/c","path":"/d"},
	{"op":"replace","path":"/d","value":3},
	{"op":"remove","path":"/b"}
]`

func TestApplyToSink(t *testing.T) {
	p := mustPatch(t, allKinds)
	s := &recordingSink{}
	if err := p.ApplyToSink(s); err != nil {
		t.Fatal(err)
	}
	want := []Kind{KindTest, KindAdd, KindCopy, KindMove, KindReplace, KindRemove}
	if diff := cmp.Diff(want, s.got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	s = &recordingSink{failAt: 3}
	if err := p.ApplyToSink(s); err == nil || err.Error() != "refused" {
		t.Fatalf("got %v", err)
	}
	if diff := cmp.Diff(want[:3], s.got); diff != "" {
		t.Errorf("ops after failure delivered (-want +got):\n%s", diff)
	}
}

func TestSinkFunc(t *testing.T) {
	p := mustPatch(t, allKinds)
	var paths []string
	err := p.ApplyToSink(SinkFunc(func(op Operation) error {
		paths = append(paths, encode.MustString(op.ToIR()))
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 6 || paths[3] != `{"op":"move","from":"/c","path":"/d"}` {
		t.Errorf("got %v", paths)
	}
}

func TestNodeSink(t *testing.T) {
	p := mustPatch(t, allKinds)
	viaSink := mustParse(t, `{"a":1}`)
	if err := p.ApplyToSink(NodeSink(viaSink)); err != nil {
		t.Fatal(err)
	}
	direct := mustParse(t, `{"a":1}`)
	if err := p.ApplyInPlace(direct); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(encode.MustString(direct), encode.MustString(viaSink)); diff != "" {
		t.Errorf("(-in place +sink):\n%s", diff)
	}
	if got := encode.MustString(direct); got != `{"a":1,"d":3}` {
		t.Errorf("got %s", got)
	}
}
