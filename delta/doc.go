// Package delta converts documents to and from a Quill-style op-log: an
// ordered list of insert operations with optional attribute maps, consumed
// by a third-party rich-text widget.
//
// The conversion is lossy. Text, headings, images, and formulas
// map onto the widget's standard inserts; tables, media, comment anchors,
// multiple-choice blocks, and info boxes are representable only as custom
// typed inserts, and importing those requires the consumer widget to
// understand the custom types. Import is tolerant: unrecognized ops are
// skipped and malformed attribute values are ignored field by field.
package delta
