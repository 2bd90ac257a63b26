package node

import "strings"

// Tag describes one HTML element kind. The fixed fragments of the element
// are computed once by NewTag; calling the tag only adds attributes and
// children. A Tag is immutable and safe for concurrent use.
type Tag struct {
	name            string
	void            bool
	start           string // "<name"
	startNoAttrs    string // "<name>"
	closing         string // "</name>", empty for void elements
	noChildrenClose string // "/>" or "></name>"
	rendered        SafeString
}

// NewTag returns the descriptor for the element name. Void elements have no
// closing tag and render as "<name/>" when empty.
func NewTag(name string, void bool) *Tag {
	t := &Tag{
		name:         name,
		void:         void,
		start:        "<" + name,
		startNoAttrs: "<" + name + ">",
	}
	if void {
		t.noChildrenClose = "/>"
	} else {
		t.closing = "</" + name + ">"
		t.noChildrenClose = ">" + t.closing
	}
	t.rendered = SafeString(t.start + t.noChildrenClose)
	return t
}

// Name returns the element name.
func (t *Tag) Name() string {
	return t.name
}

// Void reports whether the element is a void element.
func (t *Tag) Void() bool {
	return t.void
}

// Rendered returns the element without attributes or children,
// e.g. "<div></div>" or "<br/>".
func (t *Tag) Rendered() SafeString {
	return t.rendered
}

// OpenTag returns the opening fragment used when the element has children
// but no attributes.
func (t *Tag) OpenTag() string {
	return t.startNoAttrs
}

// CloseTag returns the closing fragment, empty for void elements.
func (t *Tag) CloseTag() string {
	return t.closing
}

// Build calls the tag with attrs and children.
//
// With no children the result is a fully rendered SafeString; with children
// it is an *Element whose children are rendered later. Build fails with
// ErrInvalidAttrValue when an attribute value is not a string, SafeString
// or nil. Children are not inspected here.
func (t *Tag) Build(attrs Attrs, children ...Node) (Node, error) {
	if len(attrs) == 0 {
		if len(children) > 0 {
			return &Element{Open: t.startNoAttrs, Children: children, Close: t.closing, tag: t}, nil
		}
		return t.rendered, nil
	}

	var b strings.Builder
	b.WriteString(t.start)
	if err := writeAttrs(&b, attrs); err != nil {
		return nil, err
	}

	if len(children) > 0 {
		b.WriteByte('>')
		return &Element{Open: b.String(), Children: children, Close: t.closing, tag: t}, nil
	}
	b.WriteString(t.noChildrenClose)
	return SafeString(b.String()), nil
}

// Call is Build for use inside nested tree literals. An invalid attribute
// does not panic; the returned node makes the render fail with the same
// error Build would have returned.
func (t *Tag) Call(attrs Attrs, children ...Node) Node {
	n, err := t.Build(attrs, children...)
	if err != nil {
		return &failed{err: err}
	}
	return n
}

// String returns the empty rendering of the tag.
func (t *Tag) String() string {
	return string(t.rendered)
}
