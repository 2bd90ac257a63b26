// Package markup decodes declarative page documents into node trees.
//
// A document is a YAML (or JSON) sequence of nodes. A node is either a
// scalar, rendered as escaped text, or a mapping with exactly one of the
// keys doctype, text, raw, sanitize or tag:
//
//	# pages/index.yaml
//	- doctype: html                 # node.Doctype
//	- tag: html
//	  children:
//	    - text: "Tom & Jerry"       # escaped text, same as a bare scalar
//	    - raw: "<hr/>"              # trusted markup, emitted verbatim
//	    - sanitize: "<b onclick=x>hi</b>"
//	      policy: ugc               # strict, ugc (default) or svg
//	    - tag: a
//	      attrs:                    # order is preserved
//	        href: /docs
//	        download:               # null value: boolean attribute
//	      children:
//	        - Docs
//
// Element names are resolved through the el registry. Unknown names are
// rejected unless the node sets custom: true (and void: true for void
// custom elements).
package markup
