// Package encode writes IR nodes as JSON or YAML text.
//
// JSON output preserves object member order and the literal text of parsed
// numbers. It is indented with two spaces by default; EncodeIndent(0)
// selects compact output. EncodeColors highlights output for terminals.
//
//	err := encode.Encode(node, os.Stdout)
//	err := encode.Encode(node, w, encode.EncodeIndent(0))
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
package encode
