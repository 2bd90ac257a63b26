// Package sanitize turns untrusted markup into node.SafeString values.
//
// node.Safe trusts its input blindly. When markup comes from users or third
// parties, pass it through one of the policies here first; the result can
// then be embedded in a tree without further escaping.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/crel-dev/crel/pkg/node"
)

// Policy names accepted by ByName.
const (
	PolicyStrict = "strict"
	PolicyUGC    = "ugc"
	PolicySVG    = "svg"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy

	ugcOnce   sync.Once
	ugcPolicy *bluemonday.Policy

	svgOnce   sync.Once
	svgPolicy *bluemonday.Policy
)

// Strict removes every element and attribute, keeping only text.
func Strict(raw string) node.SafeString {
	return apply(strict(), raw)
}

// UGC keeps the formatting, links and images commonly allowed in
// user-generated content.
func UGC(raw string) node.SafeString {
	return apply(ugc(), raw)
}

// SVG keeps inline SVG icon markup (shapes, paths, presentation attributes).
func SVG(raw string) node.SafeString {
	return apply(svg(), raw)
}

// ByName returns the sanitizer for a policy name, or false if the name is
// unknown.
func ByName(name string) (func(string) node.SafeString, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyStrict:
		return Strict, true
	case PolicyUGC, "":
		return UGC, true
	case PolicySVG:
		return SVG, true
	}
	return nil, false
}

func apply(policy *bluemonday.Policy, raw string) node.SafeString {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return node.Safe(strings.TrimSpace(policy.Sanitize(trimmed)))
}

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

func ugc() *bluemonday.Policy {
	ugcOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		ugcPolicy = policy
	})
	return ugcPolicy
}

func svg() *bluemonday.Policy {
	svgOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href", "clip-path").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs", "g")

		svgPolicy = policy
	})
	return svgPolicy
}
