// Package markdown renders documents as Markdown text.
//
// Paragraphs and headings render as literal Markdown. Tables render as
// GitHub-flavored tables when no cell spans more than one row or column;
// tables with spanning cells fall back to embedded HTML, which Markdown
// renderers pass through. Comment anchors are dropped from the output.
package markdown
