package node

// Element is the deferred form of a tag called with children. Open already
// contains the rendered attributes; Children are flattened between Open and
// Close by the renderer.
//
// Children are kept as given. An Element whose children include a *Seq can
// be rendered only once.
type Element struct {
	Open     string
	Children []Node
	Close    string

	tag *Tag
}

// Tag returns the descriptor that produced e, or nil for hand-built elements.
func (e *Element) Tag() *Tag {
	return e.tag
}
