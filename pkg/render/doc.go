// Package render flattens crel node trees into HTML.
//
// The renderer performs one depth-first, order-preserving traversal of the
// tree:
//
//   - an *Element writes its opening fragment, its children, then its
//     closing fragment
//   - a SafeString is written verbatim
//   - text is entity-escaped
//   - a bare *Tag writes its empty form ("<div></div>", "<br/>")
//   - groups are flattened in order
//   - single-pass sequences are drained exactly once
//
// Any other value aborts the render with node.ErrUnsupportedNode.
//
// # Basic Usage
//
//	html, err := render.Render(node.Doctype, page)
//
// Render accumulates into a strings.Builder and returns either the complete
// document or an error, never a prefix of the output.
//
// To stream to a writer:
//
//	err := render.RenderTo(w, node.Doctype, page)
//
// RenderTo writes as it walks, so on error part of the document may already
// have reached w.
//
// # Streaming over HTTP
//
// StreamingRenderer flushes after every top-level node when the response
// writer supports http.Flusher:
//
//	sr := render.NewStreamingRenderer(w, render.RendererConfig{})
//	err := sr.Render(node.Doctype, head, body)
//
// # Concurrency
//
// A Renderer holds no per-render state and may be shared. Trees are only
// read, except for single-pass sequences (node.Seq), which are claimed by the
// first render that reaches them; rendering such a tree a second time, or
// from two goroutines, fails with node.ErrSeqConsumed.
package render
