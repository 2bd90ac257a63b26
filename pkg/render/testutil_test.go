package render

import (
	"testing"

	"github.com/crel-dev/crel/pkg/node"
)

var (
	tagHTML  = node.NewTag("html", false)
	tagHead  = node.NewTag("head", false)
	tagTitle = node.NewTag("title", false)
	tagBody  = node.NewTag("body", false)
	tagDiv   = node.NewTag("div", false)
	tagP     = node.NewTag("p", false)
	tagUl    = node.NewTag("ul", false)
	tagLi    = node.NewTag("li", false)
	tagBr    = node.NewTag("br", true)
	tagInput = node.NewTag("input", true)
)

// mustRender renders nodes and fails the test on error.
func mustRender(t *testing.T, nodes ...node.Node) string {
	t.Helper()
	html, err := Render(nodes...)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return html
}
