// Package gen renders the derived artifacts of a schema document: the
// shared protobuf schema, the default initializers and one helper binding
// per entity.
//
// Generation uses text/template over the immutable model, so the same
// document always renders byte-identical files. Every artifact is verified
// before it is written:
//   - the schema is parsed back and its field numbering checked
//   - C++ sources must have balanced braces and parentheses
//
// Files are written atomically (temporary file then rename).
package gen
