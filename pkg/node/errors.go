package node

import crelerrors "github.com/crel-dev/crel/internal/errors"

// Sentinel errors. Returned errors carry extra detail but match these
// under errors.Is.
var (
	// ErrUnsupportedNode reports a value the renderer cannot flatten.
	ErrUnsupportedNode = crelerrors.New("E001")

	// ErrInvalidAttrValue reports an attribute value that is neither a
	// string, a SafeString nor nil.
	ErrInvalidAttrValue = crelerrors.New("E002")

	// ErrSeqConsumed reports a second traversal of a single-pass sequence.
	ErrSeqConsumed = crelerrors.New("E003")
)
