package node

import (
	"strings"

	crelerrors "github.com/crel-dev/crel/internal/errors"
)

// Attr is a single attribute in a tag call.
//
// Value is a string (escaped), a SafeString (verbatim) or nil, which renders
// the bare key as a boolean attribute. Any other value makes the tag call
// fail with ErrInvalidAttrValue.
type Attr struct {
	Key     string
	Value   any
	safeKey bool
}

// A returns the attribute key=value.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Bool returns a boolean attribute rendered as the bare key.
func Bool(key string) Attr {
	return Attr{Key: key}
}

// SafeKey returns an attribute whose key is emitted without escaping.
func SafeKey(key SafeString, value any) Attr {
	return Attr{Key: string(key), Value: value, safeKey: true}
}

// IsSafeKey reports whether the key bypasses escaping.
func (a Attr) IsSafeKey() bool {
	return a.safeKey
}

// Attrs is an ordered attribute list. Attributes are rendered in slice order.
type Attrs []Attr

// Set returns attrs with key set to value, replacing an existing entry with
// the same key in place or appending a new one.
func (attrs Attrs) Set(key string, value any) Attrs {
	for i := range attrs {
		if attrs[i].Key == key {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, A(key, value))
}

// Get returns the value of key and whether it is present.
func (attrs Attrs) Get(key string) (any, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// commonSafeAttributeNames are attribute names emitted without escaping.
// Every entry must be safe to write raw.
var commonSafeAttributeNames = map[string]struct{}{
	"alt":             {},
	"autoplay":        {},
	"charset":         {},
	"checked":         {},
	"class":           {},
	"colspan":         {},
	"content":         {},
	"contenteditable": {},
	"d":               {},
	"data-index":      {},
	"data-format":     {},
	"dir":             {},
	"disabled":        {},
	"draggable":       {},
	"enctype":         {},
	"for":             {},
	"fill":            {},
	"height":          {},
	"hidden":          {},
	"href":            {},
	"hreflang":        {},
	"http-equiv":      {},
	"id":              {},
	"itemprop":        {},
	"itemscope":       {},
	"itemtype":        {},
	"label":           {},
	"lang":            {},
	"loadable":        {},
	"method":          {},
	"name":            {},
	"onblur":          {},
	"onclick":         {},
	"onfocus":         {},
	"onkeydown":       {},
	"onkeyup":         {},
	"onload":          {},
	"onselect":        {},
	"onsubmit":        {},
	"placeholder":     {},
	"poster":          {},
	"property":        {},
	"rel":             {},
	"required":        {},
	"rowspan":         {},
	"selected":        {},
	"sizes":           {},
	"spellcheck":      {},
	"src":             {},
	"style":           {},
	"target":          {},
	"title":           {},
	"type":            {},
	"value":           {},
	"viewBox":         {},
	"width":           {},
	"xmlns":           {},
}

// IsCommonSafeAttr reports whether name is written without escaping.
func IsCommonSafeAttr(name string) bool {
	_, ok := commonSafeAttributeNames[name]
	return ok
}

// attrKey returns the key as it appears in the output.
func (a Attr) attrKey() string {
	if a.safeKey || IsCommonSafeAttr(a.Key) {
		return a.Key
	}
	return EscapeAttrKey(a.Key)
}

// writeAttrs serializes attrs, each prefixed with a space.
func writeAttrs(b *strings.Builder, attrs Attrs) error {
	for i, a := range attrs {
		key := a.attrKey()
		switch v := a.Value.(type) {
		case string:
			b.WriteByte(' ')
			b.WriteString(key)
			b.WriteString(`="`)
			b.WriteString(EscapeAttrValue(v))
			b.WriteByte('"')
		case SafeString:
			b.WriteByte(' ')
			b.WriteString(key)
			b.WriteString(`="`)
			b.WriteString(string(v))
			b.WriteByte('"')
		case nil:
			b.WriteByte(' ')
			b.WriteString(key)
		default:
			return crelerrors.New(ErrInvalidAttrValue.Code).
				WithDetailf("attribute %q (#%d) has value of type %T", a.Key, i, a.Value)
		}
	}
	return nil
}
