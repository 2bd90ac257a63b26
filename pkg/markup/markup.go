package markup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crel-dev/crel/el"
	crelerrors "github.com/crel-dev/crel/internal/errors"
	"github.com/crel-dev/crel/pkg/node"
	"github.com/crel-dev/crel/pkg/sanitize"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrDecode         = crelerrors.New("E020")
	ErrUnknownElement = crelerrors.New("E021")
	ErrInvalidNode    = crelerrors.New("E022")
)

const (
	keyTag      = "tag"
	keyAttrs    = "attrs"
	keyChildren = "children"
	keyCustom   = "custom"
	keyVoid     = "void"
	keyText     = "text"
	keyRaw      = "raw"
	keySanitize = "sanitize"
	keyPolicy   = "policy"
	keyDoctype  = "doctype"
)

// kindKeys are the keys that select what a mapping node is.
var kindKeys = []string{keyTag, keyText, keyRaw, keySanitize, keyDoctype}

// Decode parses a document into top-level nodes ready for rendering.
func Decode(data []byte) ([]node.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, crelerrors.New(ErrDecode.Code).Wrap(err)
	}
	if root.Kind == 0 {
		return nil, nil
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		return decodeList(root.Content[0])
	}
	return decodeList(&root)
}

// Parse reads a document from r.
func Parse(r io.Reader) ([]node.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, crelerrors.New(ErrDecode.Code).Wrap(err)
	}
	return Decode(data)
}

// DecodeFile reads and decodes the document at path. Errors carry the path.
func DecodeFile(path string) ([]node.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, crelerrors.New(ErrDecode.Code).WithPath(path).Wrap(err)
	}
	nodes, err := Decode(data)
	if err != nil {
		if ce, ok := err.(*crelerrors.CrelError); ok {
			ce.Path = joinPath(path, ce.Path)
			return nil, ce
		}
		return nil, err
	}
	return nodes, nil
}

// decodeList decodes a sequence of nodes, or a single node.
func decodeList(n *yaml.Node) ([]node.Node, error) {
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		single, err := decodeNode(n)
		if err != nil {
			return nil, err
		}
		return []node.Node{single}, nil
	}

	out := make([]node.Node, 0, len(n.Content))
	for _, item := range n.Content {
		decoded, err := decodeNode(item)
		if err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

func decodeNode(n *yaml.Node) (node.Node, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if isNull(n) {
			return nil, invalid(n, "null is not a node")
		}
		return n.Value, nil
	case yaml.SequenceNode:
		children, err := decodeList(n)
		if err != nil {
			return nil, err
		}
		return node.Group(children), nil
	case yaml.MappingNode:
		return decodeMapping(n)
	}
	return nil, invalid(n, "unexpected YAML node")
}

func decodeMapping(n *yaml.Node) (node.Node, error) {
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		fields[n.Content[i].Value] = resolve(n.Content[i+1])
	}

	var kind string
	for _, k := range kindKeys {
		if _, ok := fields[k]; !ok {
			continue
		}
		if kind != "" {
			return nil, invalid(n, fmt.Sprintf("both %q and %q are set", kind, k))
		}
		kind = k
	}

	if kind != "" && kind != keyTag && kind != keyDoctype && fields[kind].Kind != yaml.ScalarNode {
		return nil, invalid(fields[kind], fmt.Sprintf("%s must be a string", kind))
	}

	switch kind {
	case keyTag:
		return decodeElement(n, fields)
	case keyText:
		return node.Text(fields[keyText].Value), nil
	case keyRaw:
		return node.Safe(fields[keyRaw].Value), nil
	case keySanitize:
		policy := ""
		if p, ok := fields[keyPolicy]; ok {
			policy = p.Value
		}
		clean, ok := sanitize.ByName(policy)
		if !ok {
			return nil, invalid(n, fmt.Sprintf("unknown sanitize policy %q", policy))
		}
		return clean(fields[keySanitize].Value), nil
	case keyDoctype:
		return node.Doctype, nil
	}
	return nil, invalid(n, "mapping has none of tag, text, raw, sanitize, doctype")
}

func decodeElement(n *yaml.Node, fields map[string]*yaml.Node) (node.Node, error) {
	name := strings.TrimSpace(fields[keyTag].Value)
	if name == "" {
		return nil, invalid(n, "empty tag name")
	}

	tag, ok := el.Lookup(name)
	if !ok {
		if !boolField(fields, keyCustom) {
			return nil, crelerrors.New(ErrUnknownElement.Code).
				WithDetailf("%q", name).
				WithPath(position(n))
		}
		tag = node.NewTag(name, boolField(fields, keyVoid))
	}

	attrs, err := decodeAttrs(fields[keyAttrs])
	if err != nil {
		return nil, err
	}

	var children []node.Node
	if c, ok := fields[keyChildren]; ok {
		children, err = decodeList(c)
		if err != nil {
			return nil, err
		}
	}

	built, err := tag.Build(attrs, children...)
	if err != nil {
		if ce, ok := err.(*crelerrors.CrelError); ok {
			ce.Path = position(n)
		}
		return nil, err
	}
	return built, nil
}

func decodeAttrs(n *yaml.Node) (node.Attrs, error) {
	if n == nil || isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, invalid(n, "attrs must be a mapping")
	}

	attrs := make(node.Attrs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], resolve(n.Content[i+1])
		switch {
		case isNull(value):
			attrs = append(attrs, node.Bool(key.Value))
		case value.Kind == yaml.ScalarNode:
			attrs = append(attrs, node.A(key.Value, value.Value))
		default:
			return nil, invalid(value, fmt.Sprintf("attribute %q must be a scalar or null", key.Value))
		}
	}
	return attrs, nil
}

func boolField(fields map[string]*yaml.Node, key string) bool {
	v, ok := fields[key]
	if !ok {
		return false
	}
	var b bool
	if err := v.Decode(&b); err != nil {
		return false
	}
	return b
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func invalid(n *yaml.Node, detail string) error {
	return crelerrors.New(ErrInvalidNode.Code).WithDetail(detail).WithPath(position(n))
}

func position(n *yaml.Node) string {
	return fmt.Sprintf("line %d, column %d", n.Line, n.Column)
}

func joinPath(file, inner string) string {
	if inner == "" {
		return file
	}
	return file + ": " + inner
}
