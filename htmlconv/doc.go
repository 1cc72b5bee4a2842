// Package htmlconv converts documents to and from HTML markup.
//
// Export is a pure function from a document to a markup string. Tables
// render with colspan/rowspan attributes and skip placeholder cells; styled
// spans render as nested elements in a fixed wrapping order (code innermost,
// then underline, italic, bold, then a style span for color/highlight/size,
// then the link outermost).
//
// Import is best-effort: it parses arbitrary HTML, charset-aware, and maps
// the elements it recognizes onto document nodes, reconstructing table
// placeholder cells from colspan/rowspan attributes. Unrecognized markup
// degrades to plain paragraphs or is skipped; import never fails on strange
// but well-formed input.
package htmlconv
