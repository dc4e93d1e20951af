// Package docfmt lays out a realised document tree as plain text.
//
// It is the last stage of a text generation pipeline: upstream stages build
// a tree of [Node] values whose sentences are already worded, and docfmt
// only decides whitespace, titles, bullets and ordering. The entry points
// are [Realise] and [RealiseAll], or the same methods on a configured
// [Formatter].
//
// # Elements
//
// An [Element] is either a structural [*Node] or a pre-realised [Leaf].
// Realising a Leaf returns it unchanged, so the output of one pass can be
// fed to another. A nil element realises to an empty Leaf.
//
// # Layout
//
// Each [Category] has one rule:
//
//   - [Document], [Section], [List] — the title (if any) and a newline,
//     then every child's text with no separator
//   - [Paragraph] — non-empty child texts joined by one space, then a
//     blank line ("\n\n"), even with no children
//   - [Sentence] — the node's own Text
//   - [ListItem] — " * " followed by the node's own Text, or by its
//     children's text concatenated when Text is empty
//
// Nodes with any other category realise to an empty string. For example:
//
//	doc := docfmt.NewDocument("Report",
//		docfmt.NewParagraph(docfmt.NewSentence("Hello."), docfmt.NewSentence("World.")),
//		docfmt.NewList("", docfmt.NewListItem("Buy milk")),
//	)
//	leaf, _ := docfmt.Realise(doc)
//	// leaf.Text == "Report\nHello. World.\n\n * Buy milk"
//
// # Options
//
// [Formatter.MaxDepth] guards against cyclic or runaway trees and
// [Formatter.Width] reflows paragraph text to a display width.
//
// # Formats
//
// [Write] and [Marshal] realise elements and encode the leaves as
// [Plain], [JSON], [JSONL] or [YAML]. [Decode] and [Unmarshal] read a
// tree serialized as JSON or YAML:
//
//	{"category": "paragraph", "children": [{"category": "sentence", "text": "Hi."}]}
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrTooDeep] — the tree nests deeper than MaxDepth
//   - [ErrUnsupportedFormat] — unknown format name
//   - [ErrUnknownCategory] — unknown category name
//   - [ErrDecode] — malformed serialized tree
package docfmt
