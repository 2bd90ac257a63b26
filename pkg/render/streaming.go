package render

import (
	"io"
	"net/http"

	"github.com/crel-dev/crel/pkg/node"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes after each top-level node for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w. If w
// implements http.Flusher, content is flushed after each top-level node.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// Render writes nodes in order, flushing after each one. Typical callers
// pass the doctype, the head and the body separately so the head reaches
// the client before the body is rendered.
func (s *StreamingRenderer) Render(nodes ...node.Node) error {
	for _, n := range nodes {
		if err := s.RenderToWriter(s.w, n); err != nil {
			return err
		}
		s.flush()
	}
	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with a flush counter.
// This is useful for testing streaming behavior without an HTTP server.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
