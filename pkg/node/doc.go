// Package node defines the renderable values of crel.
//
// A node tree is built by calling tag descriptors rather than by parsing
// template text:
//
//	page := el.Html.Call(nil,
//	    el.Head.Call(nil, el.Title.Call(nil, "Hi")),
//	    el.Body.Call(node.Attrs{node.A("class", "home")},
//	        el.P.Call(nil, "Hello & welcome"),
//	    ),
//	)
//
// # Node variants
//
// Every value accepted by the renderer falls in one of the Kinds reported
// by KindOf:
//
//   - KindText: a string or Text, escaped on render
//   - KindSafe: a SafeString, emitted verbatim
//   - KindTag: a *Tag used bare, emitted in its empty form
//   - KindElement: an *Element, the deferred three-part form produced by a
//     tag call that has children
//   - KindGroup: a []Node or Group, flattened in order
//   - KindSeq: a *Seq or iter.Seq[Node], drained in order
//
// Anything else is KindInvalid and fails the render with
// ErrUnsupportedNode.
//
// # Escaping
//
// Text and attribute values are entity-escaped. Attribute names outside a
// small set of well-known names are escaped more strictly, so that a key
// cannot break out of the attribute or inject whitespace. SafeStrings bypass
// escaping in every position; the caller vouches for their content.
package node
