package node

import "iter"

// Node is any value the renderer accepts. See KindOf for the variants.
type Node = any

// Text is plain text content. A string child is treated the same way.
type Text string

// Group is an ordered list of nodes rendered back to back. Grouping does not
// change the output; it only lets callers pass several nodes as one child.
type Group []Node

// Kind is the node variant discriminator.
type Kind uint8

const (
	KindInvalid Kind = iota // not a renderable value
	KindText                // string or Text, escaped
	KindSafe                // SafeString, verbatim
	KindTag                 // *Tag used bare
	KindElement             // *Element with deferred children
	KindGroup               // []Node or Group
	KindSeq                 // *Seq or iter.Seq[Node], single pass
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindSafe:
		return "Safe"
	case KindTag:
		return "Tag"
	case KindElement:
		return "Element"
	case KindGroup:
		return "Group"
	case KindSeq:
		return "Seq"
	default:
		return "Invalid"
	}
}

// KindOf classifies v.
func KindOf(v Node) Kind {
	switch n := v.(type) {
	case string, Text:
		return KindText
	case SafeString:
		return KindSafe
	case *Tag:
		if n == nil {
			return KindInvalid
		}
		return KindTag
	case *Element:
		if n == nil {
			return KindInvalid
		}
		return KindElement
	case []Node, Group:
		return KindGroup
	case *Seq:
		if n == nil {
			return KindInvalid
		}
		return KindSeq
	case iter.Seq[Node]:
		if n == nil {
			return KindInvalid
		}
		return KindSeq
	case func(func(Node) bool):
		if n == nil {
			return KindInvalid
		}
		return KindSeq
	default:
		return KindInvalid
	}
}

// Children returns the child list of a group-like value: the children of an
// *Element or the members of a []Node or Group. It returns nil for every
// other kind.
func Children(v Node) []Node {
	switch n := v.(type) {
	case *Element:
		if n == nil {
			return nil
		}
		return n.Children
	case Group:
		return n
	case []Node:
		return n
	}
	return nil
}

// ErrOf returns the error carried by the result of a failed Tag.Call, or nil.
func ErrOf(v Node) error {
	if f, ok := v.(*failed); ok && f != nil {
		return f.err
	}
	return nil
}

// failed is returned by Tag.Call when the attributes are invalid. It renders
// as an error, never as output.
type failed struct {
	err error
}
