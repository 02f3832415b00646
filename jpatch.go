package jpatch

import (
	"bytes"

	"github.com/signadot/jpatch/encode"
	"github.com/signadot/jpatch/ir"
	"github.com/signadot/jpatch/jsonpatch"
	"github.com/signadot/jpatch/mergepatch"
	"github.com/signadot/jpatch/parse"
)

// ApplyJSON applies the RFC 6902 patch in patch to the JSON document doc
// and returns the encoded result. Output is compact JSON unless opts say
// otherwise.
func ApplyJSON(doc, patch []byte, opts ...encode.EncodeOption) ([]byte, error) {
	docNode, err := parse.Parse(doc)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	res, err := p.ApplyToCopy(docNode)
	if err != nil {
		return nil, err
	}
	return encodeBytes(res, opts)
}

// MergeJSON merges the RFC 7396 merge patch in patch into the JSON
// document doc and returns the encoded result.
func MergeJSON(doc, patch []byte, opts ...encode.EncodeOption) ([]byte, error) {
	docNode, err := parse.Parse(doc)
	if err != nil {
		return nil, err
	}
	patchNode, err := parse.Parse(patch)
	if err != nil {
		return nil, err
	}
	mergepatch.MergeInPlace(docNode, patchNode)
	return encodeBytes(docNode, opts)
}

func encodeBytes(node *ir.Node, opts []encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	opts = append([]encode.EncodeOption{encode.EncodeIndent(0)}, opts...)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
