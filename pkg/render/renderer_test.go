package render

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	crelerrors "github.com/crel-dev/crel/internal/errors"
	"github.com/crel-dev/crel/pkg/node"
)

func TestRenderTextEscaping(t *testing.T) {
	html := mustRender(t, tagP.Call(nil, "<script>"))

	if strings.Contains(html, "<script>") {
		t.Errorf("text should be escaped, got %q", html)
	}
	if html != "<p>&lt;script&gt;</p>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderTopLevelText(t *testing.T) {
	if got := mustRender(t, `Tom & "Jerry"`, node.Text("<i>")); got != "Tom &amp; &quot;Jerry&quot;&lt;i&gt;" {
		t.Errorf("got %q", got)
	}
}

func TestRenderSafeStringVerbatim(t *testing.T) {
	raw := `<div onclick="x('&amp;')">&nbsp;<</div>`
	if got := mustRender(t, node.Safe(raw)); got != raw {
		t.Errorf("got %q, want %q", got, raw)
	}
	if got := mustRender(t, tagDiv.Call(nil, node.Safe(raw))); got != "<div>"+raw+"</div>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderEmptyTags(t *testing.T) {
	tests := []struct {
		name string
		node node.Node
		want string
	}{
		{"void call", tagBr.Call(nil), "<br/>"},
		{"element call", tagDiv.Call(nil), "<div></div>"},
		{"bare void tag", tagBr, "<br/>"},
		{"bare tag", tagDiv, "<div></div>"},
		{"attrs on void", tagInput.Call(node.Attrs{node.Bool("disabled")}), "<input disabled/>"},
		{"escaped attr", tagDiv.Call(node.Attrs{node.A("class", "a&b")}), `<div class="a&amp;b"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderNestedGroupsFlattenInOrder(t *testing.T) {
	tree := tagDiv.Call(nil,
		[]node.Node{"a", "b"},
		"c",
		node.Group{node.Group{"d"}, []node.Node{}, "e"},
	)
	if got := mustRender(t, tree); got != "<div>abcde</div>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderDocument(t *testing.T) {
	got := mustRender(t,
		node.Doctype,
		tagHTML.Call(nil,
			tagHead.Call(nil, tagTitle.Call(nil, "Hi")),
			tagBody.Call(nil, tagP.Call(nil, "Hello & welcome")),
		),
	)
	want := "<!doctype html><html><head><title>Hi</title></head><body><p>Hello &amp; welcome</p></body></html>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	tree := tagUl.Call(node.Attrs{node.A("id", "list")},
		tagLi.Call(nil, "one"),
		tagLi.Call(nil, "<two>"),
		node.Group{tagBr, node.Safe("<hr/>")},
	)

	first := mustRender(t, tree)
	second := mustRender(t, tree)
	if first != second {
		t.Errorf("renders differ:\n%q\n%q", first, second)
	}
}

func TestRenderUnsupportedNode(t *testing.T) {
	tests := []struct {
		name string
		node node.Node
	}{
		{"int child", tagDiv.Call(nil, 42)},
		{"top-level float", 1.5},
		{"nil", nil},
		{"struct", struct{}{}},
		{"string slice", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := Render(tt.node)
			if !errors.Is(err, node.ErrUnsupportedNode) {
				t.Fatalf("error = %v, want ErrUnsupportedNode", err)
			}
			if html != "" {
				t.Errorf("failed render should return no output, got %q", html)
			}
		})
	}
}

func TestRenderErrorPath(t *testing.T) {
	tree := tagHTML.Call(nil, tagBody.Call(nil, tagP.Call(nil, "ok", 7)))

	_, err := Render(tree)
	var ce *crelerrors.CrelError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %T, want *CrelError", err)
	}
	if ce.Path != "html/body/p" {
		t.Errorf("Path = %q, want html/body/p", ce.Path)
	}
	if ce.Detail != "got int" {
		t.Errorf("Detail = %q", ce.Detail)
	}
}

func TestRenderInvalidAttributeFromCall(t *testing.T) {
	tree := tagDiv.Call(nil, tagP.Call(node.Attrs{node.A("tabindex", 1)}, "x"))

	html, err := Render(tree)
	if !errors.Is(err, node.ErrInvalidAttrValue) {
		t.Fatalf("error = %v, want ErrInvalidAttrValue", err)
	}
	if html != "" {
		t.Errorf("got %q, want empty output", html)
	}
}

func TestRenderFailedNodeErrorIsNotShared(t *testing.T) {
	failed := tagP.Call(node.Attrs{node.A("tabindex", 1)}, "x")

	_, err := Render(failed)
	var first *crelerrors.CrelError
	if !errors.As(err, &first) {
		t.Fatalf("error = %v, want *CrelError", err)
	}
	first.Path = "pages/index.yaml"

	_, err = Render(failed)
	var second *crelerrors.CrelError
	if !errors.As(err, &second) {
		t.Fatalf("error = %v, want *CrelError", err)
	}
	if second == first {
		t.Fatal("each render should return its own error value")
	}
	if second.Path != "" {
		t.Errorf("second render Path = %q, want empty", second.Path)
	}
	if stored := node.ErrOf(failed); stored.(*crelerrors.CrelError).Path != "" {
		t.Errorf("stored error was modified: %v", stored)
	}
}

func TestRenderSeqOnce(t *testing.T) {
	items := node.Once(func(yield func(node.Node) bool) {
		for _, s := range []string{"a", "b", "c"} {
			if !yield(tagLi.Call(nil, s)) {
				return
			}
		}
	})
	tree := tagUl.Call(nil, items)

	if got := mustRender(t, tree); got != "<ul><li>a</li><li>b</li><li>c</li></ul>" {
		t.Errorf("got %q", got)
	}

	_, err := Render(tree)
	if !errors.Is(err, node.ErrSeqConsumed) {
		t.Fatalf("second render error = %v, want ErrSeqConsumed", err)
	}
}

func TestRenderIterSeq(t *testing.T) {
	var seq iter.Seq[node.Node] = slices.Values([]node.Node{"x", node.Safe("<br/>")})
	if got := mustRender(t, tagP.Call(nil, seq)); got != "<p>x<br/></p>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderSeqStopsOnError(t *testing.T) {
	produced := 0
	seq := node.Once(func(yield func(node.Node) bool) {
		for _, v := range []node.Node{"a", 3, "c"} {
			produced++
			if !yield(v) {
				return
			}
		}
	})

	if _, err := Render(seq); !errors.Is(err, node.ErrUnsupportedNode) {
		t.Fatalf("error = %v", err)
	}
	if produced != 2 {
		t.Errorf("sequence should stop at the failing value, produced %d", produced)
	}
}

func TestRenderMaxDepth(t *testing.T) {
	tree := tagDiv.Call(nil, tagDiv.Call(nil, tagDiv.Call(nil, "deep")))

	r := NewRenderer(RendererConfig{MaxDepth: 2})
	if _, err := r.RenderToString(tree); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("error = %v, want ErrDepthExceeded", err)
	}

	r = NewRenderer(RendererConfig{MaxDepth: 3})
	if _, err := r.RenderToString(tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderTo(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTo(&buf, tagP.Call(nil, "a<b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<p>a&lt;b</p>" {
		t.Errorf("got %q", buf.String())
	}
}

type errWriter struct{ n int }

func (w *errWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, fmt.Errorf("closed")
	}
	w.n--
	return len(p), nil
}

func TestRenderToWriterError(t *testing.T) {
	err := RenderTo(&errWriter{n: 1}, tagP.Call(nil, "a"))
	if err == nil || err.Error() != "closed" {
		t.Fatalf("error = %v, want writer error", err)
	}
}

func BenchmarkRenderDocument(b *testing.B) {
	rows := make([]node.Node, 0, 100)
	for i := 0; i < 100; i++ {
		rows = append(rows, tagLi.Call(node.Attrs{node.A("class", "row")}, fmt.Sprintf("item %d & more", i)))
	}
	doc := tagHTML.Call(nil, tagBody.Call(nil, tagUl.Call(nil, node.Group(rows))))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Render(node.Doctype, doc); err != nil {
			b.Fatal(err)
		}
	}
}
