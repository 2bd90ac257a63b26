// Package el is the tag registry of crel: one node.Tag per HTML element.
//
// Typical usage:
//
//	import (
//	    "github.com/crel-dev/crel"
//	    . "github.com/crel-dev/crel/el"
//	)
//
//	page := Html.Call(nil,
//	    Head.Call(nil, Title.Call(nil, "Hi")),
//	    Body.Call(nil, P.Call(nil, "Hello & welcome")),
//	)
//	html, err := crel.Render(crel.Doctype, page)
//
// Void elements follow the HTML living standard: area, base, br, col, embed,
// hr, img, input, link, meta, param, source, track and wbr. They render as
// <name/> and never get a closing tag. Code ported from crel for Python
// should expect <col/> and <wbr/> where it produced <col></col>, and
// <iframe></iframe> where it produced <iframe/>.
//
// The descriptors are created at package initialization and never change
// afterwards, so they can be used from any number of goroutines.
package el
