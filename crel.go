// Package crel builds HTML without templates.
//
// Documents are composed from in-memory tag calls and flattened to a string
// with context-correct escaping:
//
//	import (
//	    "github.com/crel-dev/crel"
//	    . "github.com/crel-dev/crel/el"
//	)
//
//	html, err := crel.Render(crel.Doctype,
//	    Html.Call(nil,
//	        Head.Call(nil, Title.Call(nil, "Hi")),
//	        Body.Call(nil, P.Call(nil, "Hello & welcome")),
//	    ),
//	)
//	// <!doctype html><html><head><title>Hi</title></head><body><p>Hello &amp; welcome</p></body></html>
//
// Loops and conditionals are ordinary Go: build a []crel.Node, or pass a
// crel.Once sequence to stream children from an iterator.
package crel

import (
	"io"
	"iter"

	"github.com/crel-dev/crel/pkg/node"
	"github.com/crel-dev/crel/pkg/render"
)

// Type aliases for the node primitives.
type (
	Node       = node.Node
	SafeString = node.SafeString
	Text       = node.Text
	Group      = node.Group
	Attr       = node.Attr
	Attrs      = node.Attrs
	Tag        = node.Tag
	Element    = node.Element
	Seq        = node.Seq
)

// Doctype is the HTML5 document type declaration.
const Doctype = node.Doctype

// Sentinel errors, matched with errors.Is.
var (
	ErrUnsupportedNode  = node.ErrUnsupportedNode
	ErrInvalidAttrValue = node.ErrInvalidAttrValue
	ErrSeqConsumed      = node.ErrSeqConsumed
)

// Render flattens nodes into an HTML string.
func Render(nodes ...Node) (string, error) {
	return render.Render(nodes...)
}

// MustRender is like Render but panics on error. It is meant for trees built
// entirely from literals, where an error is a programming mistake.
func MustRender(nodes ...Node) string {
	html, err := render.Render(nodes...)
	if err != nil {
		panic(err)
	}
	return html
}

// RenderTo streams nodes to w.
func RenderTo(w io.Writer, nodes ...Node) error {
	return render.RenderTo(w, nodes...)
}

// Safe marks s as trusted markup that must not be escaped.
func Safe(s string) SafeString {
	return node.Safe(s)
}

// A returns the attribute key=value.
func A(key string, value any) Attr {
	return node.A(key, value)
}

// Bool returns a boolean attribute rendered as the bare key.
func Bool(key string) Attr {
	return node.Bool(key)
}

// Once wraps seq as a single-pass child sequence.
func Once(seq iter.Seq[Node]) *Seq {
	return node.Once(seq)
}

// NewTag returns a descriptor for an element missing from the el registry,
// such as a custom element.
func NewTag(name string, void bool) *Tag {
	return node.NewTag(name, void)
}

// Map builds one node per item, preserving order.
func Map[T any](items []T, fn func(item T, index int) Node) Group {
	out := make(Group, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}
