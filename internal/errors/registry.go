package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Render errors (E001-E019)
	"E001": {
		Category:   CategoryRender,
		Message:    "Unsupported node type",
		Suggestion: "Children must be strings, SafeStrings, tags, elements, groups or sequences. Format other values with fmt.Sprint first.",
	},
	"E002": {
		Category:   CategoryAttribute,
		Message:    "Invalid attribute value",
		Suggestion: "Attribute values must be a string, a SafeString, or nil for a boolean attribute.",
	},
	"E003": {
		Category:   CategoryRender,
		Message:    "Sequence already consumed",
		Suggestion: "A sequence created with Once can be rendered a single time. Build a Group when the children must be rendered more than once.",
	},
	"E004": {
		Category:   CategoryRender,
		Message:    "Maximum nesting depth exceeded",
		Suggestion: "Check the node tree for unintended recursion or raise the renderer's MaxDepth.",
	},

	// Markup errors (E020-E029)
	"E020": {
		Category: CategoryMarkup,
		Message:  "Cannot decode page document",
	},
	"E021": {
		Category:   CategoryMarkup,
		Message:    "Unknown element",
		Suggestion: "Use a known HTML element name or set custom: true on the node.",
	},
	"E022": {
		Category:   CategoryMarkup,
		Message:    "Invalid document node",
		Suggestion: "A node is a string or a mapping with exactly one of tag, text, raw, sanitize or doctype.",
	},

	// Config errors (E030-E039)
	"E030": {
		Category:   CategoryConfig,
		Message:    "Config file not found",
		Suggestion: "Create a crel.json in the project root or run the command from the project directory.",
	},
	"E031": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// Publish errors (E040-E049)
	"E040": {
		Category: CategoryPublish,
		Message:  "Publish failed",
	},
	"E041": {
		Category: CategoryPublish,
		Message:  "Page build failed",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
