package node

import "strings"

// textEscaper escapes text for HTML content and attribute values.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// keyEscaper escapes attribute names. It is stricter than textEscaper:
// '=', '\', '`' and spaces would otherwise let a key end the attribute or
// start a new one.
var keyEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"=", "&#x3D;",
	`\`, "&#x5C;",
	"`", "&#x60;",
	" ", "&nbsp;",
)

// EscapeText escapes s for inclusion in HTML text content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttrValue escapes s for inclusion in a double-quoted attribute value.
func EscapeAttrValue(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttrKey escapes s for use as an attribute name.
func EscapeAttrKey(s string) string {
	return keyEscaper.Replace(s)
}
