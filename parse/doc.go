// Package parse decodes JSON and YAML text into IR nodes.
//
// JSON is decoded with json-iterator's streaming Iterator so that object
// members keep their document order and numbers keep their literal text.
// YAML is decoded with goccy/go-yaml into ordered maps and then converted.
//
//	node, err := parse.Parse([]byte(`{"a": [1, 2]}`))
//	node, err := parse.Parse(d, parse.ParseYAML())
//
// All errors wrap ErrParse.
package parse
