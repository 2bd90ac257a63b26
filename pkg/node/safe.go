package node

// SafeString is markup the caller asserts is already valid, escaped HTML.
// It is emitted verbatim wherever it appears: as a child, an attribute key
// or an attribute value.
//
// SafeString is a value type, so equal contents compare equal and can be
// used as map keys or set members.
type SafeString string

// Safe wraps s without validating or escaping it.
func Safe(s string) SafeString {
	return SafeString(s)
}

// String returns the wrapped markup.
func (s SafeString) String() string {
	return string(s)
}

// Doctype is the HTML5 document type declaration.
const Doctype SafeString = "<!doctype html>"
