package dev

import (
	"github.com/crel-dev/crel/el"
	"github.com/crel-dev/crel/pkg/node"
	"github.com/crel-dev/crel/pkg/render"
)

const pageStyle = "font-family:system-ui;padding:40px;background:#1a1a1a;color:#fff;"

// errorPage renders the page shown when a document fails to render.
func errorPage(file string, err error, reload bool) string {
	return statusPage("Page Error",
		el.P.Call(nil, "The page ", el.Code.Call(nil, file), " could not be rendered:"),
		el.Pre.Call(node.Attrs{node.A("style", "white-space:pre-wrap;background:#000;padding:20px;border-radius:8px;")}, err.Error()),
		el.P.Call(node.Attrs{node.A("style", "color:#888;")}, "Fix the document and save to reload."),
		reloadScript(reload),
	)
}

// notFoundPage renders the page shown for a path without a document.
func notFoundPage(path string, reload bool) string {
	return statusPage("Page Not Found",
		el.P.Call(nil, "No page document matches ", el.Code.Call(nil, path), "."),
		el.P.Call(node.Attrs{node.A("style", "color:#888;")},
			"Create it under the pages directory as .yaml, .yml or .json."),
		reloadScript(reload),
	)
}

func statusPage(title string, body ...node.Node) string {
	doc := []node.Node{
		node.Doctype,
		el.Html.Call(node.Attrs{node.A("lang", "en")},
			el.Head.Call(nil,
				el.Meta.Call(node.Attrs{node.A("charset", "utf-8")}),
				el.Title.Call(nil, title),
			),
			el.Body.Call(node.Attrs{node.A("style", pageStyle)},
				el.H1.Call(node.Attrs{node.A("style", "color:#ff5555;")}, title),
				node.Group(body),
			),
		),
	}
	html, err := render.Render(doc...)
	if err != nil {
		// Unreachable with the fixed tree above; keep the status visible.
		return title
	}
	return html
}

func reloadScript(enabled bool) node.Node {
	if !enabled {
		return node.Group(nil)
	}
	return node.Safe(DevClientScript)
}
