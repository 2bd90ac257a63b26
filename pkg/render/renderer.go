package render

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	crelerrors "github.com/crel-dev/crel/internal/errors"
	"github.com/crel-dev/crel/pkg/node"
)

// ErrDepthExceeded reports a tree nested deeper than RendererConfig.MaxDepth.
var ErrDepthExceeded = crelerrors.New("E004")

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// MaxDepth bounds element nesting. Zero means unlimited; the traversal
	// is recursive, so callers rendering untrusted trees should set it.
	MaxDepth int
}

// Renderer flattens node trees into HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.MaxDepth < 0 {
		config.MaxDepth = 0
	}
	return &Renderer{config: config}
}

var defaultRenderer = NewRenderer(RendererConfig{})

// Render renders nodes with the default renderer.
func Render(nodes ...node.Node) (string, error) {
	return defaultRenderer.RenderToString(nodes...)
}

// RenderTo streams nodes to w with the default renderer.
func RenderTo(w io.Writer, nodes ...node.Node) error {
	return defaultRenderer.RenderToWriter(w, nodes...)
}

// RenderToString renders nodes to a single string. On error the returned
// string is empty.
func (r *Renderer) RenderToString(nodes ...node.Node) (string, error) {
	var b strings.Builder
	wk := walker{out: &b, maxDepth: r.config.MaxDepth}
	if err := wk.renderAll(nodes, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderToWriter streams nodes to w.
func (r *Renderer) RenderToWriter(w io.Writer, nodes ...node.Node) error {
	sw, ok := w.(io.StringWriter)
	if !ok {
		sw = stringWriter{w}
	}
	wk := walker{out: sw, maxDepth: r.config.MaxDepth}
	return wk.renderAll(nodes, 0)
}

type stringWriter struct {
	w io.Writer
}

func (s stringWriter) WriteString(str string) (int, error) {
	return s.w.Write([]byte(str))
}

// walker carries the output and the element path of one traversal.
type walker struct {
	out      io.StringWriter
	maxDepth int
	path     []string
}

func (wk *walker) write(s string) error {
	if s == "" {
		return nil
	}
	_, err := wk.out.WriteString(s)
	return err
}

func (wk *walker) renderAll(nodes []node.Node, depth int) error {
	for _, n := range nodes {
		if err := wk.render(n, depth); err != nil {
			return err
		}
	}
	return nil
}

// render dispatches on the node kind.
func (wk *walker) render(n node.Node, depth int) error {
	switch node.KindOf(n) {
	case node.KindElement:
		return wk.renderElement(n.(*node.Element), depth)
	case node.KindSafe:
		return wk.write(string(n.(node.SafeString)))
	case node.KindText:
		return wk.renderText(n)
	case node.KindTag:
		return wk.write(string(n.(*node.Tag).Rendered()))
	case node.KindGroup:
		return wk.renderAll(node.Children(n), depth)
	case node.KindSeq:
		return wk.renderSeq(n, depth)
	case node.KindInvalid:
		if err := node.ErrOf(n); err != nil {
			return wk.locate(err)
		}
		return wk.locate(unsupported(n))
	default:
		return fmt.Errorf("render: unhandled node kind %v", node.KindOf(n))
	}
}

func (wk *walker) renderElement(el *node.Element, depth int) error {
	if wk.maxDepth > 0 && depth >= wk.maxDepth {
		return wk.locate(crelerrors.New(ErrDepthExceeded.Code).WithDetailf("limit is %d", wk.maxDepth))
	}
	if err := wk.write(el.Open); err != nil {
		return err
	}

	name := "element"
	if t := el.Tag(); t != nil {
		name = t.Name()
	}
	wk.path = append(wk.path, name)
	if err := wk.renderAll(el.Children, depth+1); err != nil {
		return err
	}
	wk.path = wk.path[:len(wk.path)-1]

	return wk.write(el.Close)
}

func (wk *walker) renderText(n node.Node) error {
	switch t := n.(type) {
	case string:
		return wk.write(node.EscapeText(t))
	case node.Text:
		return wk.write(node.EscapeText(string(t)))
	}
	return nil
}

func (wk *walker) renderSeq(n node.Node, depth int) error {
	seq, err := seqOf(n)
	if err != nil {
		return wk.locate(err)
	}
	for child := range seq {
		if err := wk.render(child, depth); err != nil {
			return err
		}
	}
	return nil
}

// seqOf claims a KindSeq value for iteration.
func seqOf(n node.Node) (iter.Seq[node.Node], error) {
	switch s := n.(type) {
	case *node.Seq:
		return s.Take()
	case iter.Seq[node.Node]:
		return s, nil
	case func(func(node.Node) bool):
		return s, nil
	}
	return nil, unsupported(n)
}

func unsupported(n node.Node) error {
	return crelerrors.New(node.ErrUnsupportedNode.Code).WithDetailf("got %s", describe(n))
}

// locate returns a copy of err annotated with the element path of the
// failure. Errors stored in nodes are shared across renders and are never
// returned directly.
func (wk *walker) locate(err error) error {
	var ce *crelerrors.CrelError
	if !errors.As(err, &ce) {
		return err
	}
	located := *ce
	if len(wk.path) > 0 {
		located.Path = strings.Join(wk.path, "/")
	}
	return &located
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
