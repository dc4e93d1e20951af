package docfmt

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrTooDeep           = errors.New("cyclic or too deep structure")
	ErrDecode            = errors.New("invalid document")
)

// Element is a node of a document tree. It is either a [*Node] or a [Leaf].
type Element interface {
	// Realisation returns the text an upstream stage already realised for
	// the element.
	Realisation() string

	element()
}

// Node is a structural document node.
type Node struct {
	Category Category

	// Title is emitted above the children of Document, Section and List
	// nodes. Empty means no title line.
	Title string

	// Text is the node's own realised text. Sentence nodes render it
	// instead of recursing into Children. ListItem nodes render it too, and
	// fall back to their realised Children when it is empty.
	Text string

	Children []Element
}

// Realisation returns the node's own realised text.
func (n *Node) Realisation() string {
	if n == nil {
		return ""
	}
	return n.Text
}

func (*Node) element() {}

// Leaf holds final realised text. It is also what the formatter produces.
type Leaf struct {
	Text string `json:"text" yaml:"text"`
}

// Realisation returns the leaf text.
func (l Leaf) Realisation() string { return l.Text }

// String returns the leaf text.
func (l Leaf) String() string { return l.Text }

func (Leaf) element() {}

// NewLeaf returns a pre-realised text leaf.
func NewLeaf(text string) Leaf { return Leaf{Text: text} }

// NewDocument returns a Document node.
func NewDocument(title string, children ...Element) *Node {
	return &Node{Category: Document, Title: title, Children: children}
}

// NewSection returns a Section node.
func NewSection(title string, children ...Element) *Node {
	return &Node{Category: Section, Title: title, Children: children}
}

// NewList returns a List node.
func NewList(title string, children ...Element) *Node {
	return &Node{Category: List, Title: title, Children: children}
}

// NewParagraph returns a Paragraph node.
func NewParagraph(children ...Element) *Node {
	return &Node{Category: Paragraph, Children: children}
}

// NewSentence returns a Sentence node carrying its realised text.
func NewSentence(text string) *Node {
	return &Node{Category: Sentence, Text: text}
}

// NewListItem returns a ListItem node. text is the item's realised text;
// when it is empty the children are realised in its place.
func NewListItem(text string, children ...Element) *Node {
	return &Node{Category: ListItem, Text: text, Children: children}
}
