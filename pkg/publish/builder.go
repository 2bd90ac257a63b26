package publish

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	crelerrors "github.com/crel-dev/crel/internal/errors"
	"github.com/crel-dev/crel/pkg/markup"
	"github.com/crel-dev/crel/pkg/middleware"
	"github.com/crel-dev/crel/pkg/render"
)

// ErrBuild is the sentinel for a page that could not be built.
var ErrBuild = crelerrors.New("E041")

// pageExts are the document extensions recognised as pages, in lookup
// order.
var pageExts = []string{".yaml", ".yml", ".json"}

// Page is one page document.
type Page struct {
	// Name is the slash-separated path relative to the pages directory,
	// without extension (e.g. "docs/intro").
	Name string

	// Path is the document's file path.
	Path string
}

// OutputFile is the file a page renders to, relative to the output dir.
func (p Page) OutputFile() string {
	return filepath.FromSlash(p.Name) + ".html"
}

// IsPageFile reports whether path has a page document extension.
func IsPageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range pageExts {
		if ext == e {
			return true
		}
	}
	return false
}

// Discover lists the page documents under dir, sorted by name. Files and
// directories starting with "_" or "." are skipped.
func Discover(dir string) ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != dir && hidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsPageFile(p) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		pages = append(pages, Page{
			Name: strings.TrimSuffix(rel, filepath.Ext(rel)),
			Path: p,
		})
		return nil
	})
	if err != nil {
		return nil, crelerrors.New(ErrBuild.Code).
			WithDetail("cannot read pages directory").
			WithPath(dir).
			Wrap(err)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Name < pages[j].Name })
	return pages, nil
}

// hidden reports whether a file or directory name is excluded from the page
// set (partials like _layout.yaml, dotfiles).
func hidden(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

// BuilderConfig configures a Builder.
type BuilderConfig struct {
	// PagesDir holds the page documents.
	PagesDir string

	// OutputDir receives the rendered pages.
	OutputDir string

	// MaxDepth bounds element nesting (0 = unlimited).
	MaxDepth int

	// Logger receives progress messages. Default: slog.Default().
	Logger *slog.Logger
}

// Builder renders page documents to HTML files.
type Builder struct {
	config   BuilderConfig
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(config BuilderConfig) *Builder {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		config:   config,
		renderer: render.NewRenderer(render.RendererConfig{MaxDepth: config.MaxDepth}),
		logger:   logger,
	}
}

// PagesDir returns the configured pages directory.
func (b *Builder) PagesDir() string {
	return b.config.PagesDir
}

// Lookup finds the page named name ("" is "index"). Names may not escape
// the pages directory, and pages Discover skips are not found.
func (b *Builder) Lookup(name string) (Page, bool) {
	name = strings.Trim(name, "/")
	if name == "" {
		name = "index"
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(name)))
	if clean != name || strings.HasPrefix(clean, "..") || filepath.IsAbs(name) {
		return Page{}, false
	}
	for _, seg := range strings.Split(clean, "/") {
		if hidden(seg) {
			return Page{}, false
		}
	}
	for _, ext := range pageExts {
		p := filepath.Join(b.config.PagesDir, filepath.FromSlash(name)+ext)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return Page{Name: name, Path: p}, true
		}
	}
	return Page{}, false
}

// RenderPage decodes and renders a single page.
func (b *Builder) RenderPage(ctx context.Context, page Page) ([]byte, error) {
	_, span := middleware.StartSpan(ctx, "crel.render",
		attribute.String("crel.page", page.Name))

	start := time.Now()
	html, err := b.renderPage(page)
	middleware.RecordRender(time.Since(start), len(html), err)
	middleware.EndSpan(span, err)

	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

func (b *Builder) renderPage(page Page) (string, error) {
	nodes, err := markup.DecodeFile(page.Path)
	if err != nil {
		return "", err
	}
	html, err := b.renderer.RenderToString(nodes...)
	if err != nil {
		var ce *crelerrors.CrelError
		if errors.As(err, &ce) {
			if ce.Path == "" {
				ce.Path = page.Path
			} else {
				ce.Path = page.Path + ": " + ce.Path
			}
		}
		return "", err
	}
	return html, nil
}

// BuildResult summarises a build.
type BuildResult struct {
	// Files are the output files written, relative to the output dir.
	Files []string

	// Bytes is the total size written.
	Bytes int

	// Failed counts pages that did not build.
	Failed int

	// Duration is the wall time of the build.
	Duration time.Duration
}

// Build renders every page into the output directory. A failing page does
// not stop the build; all failures are joined into the returned error.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	pages, err := Discover(b.config.PagesDir)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{}
	var errs []error
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		html, err := b.RenderPage(ctx, page)
		if err == nil {
			err = b.write(page, html)
		}
		if err != nil {
			b.logger.Error("page failed", "page", page.Name, "error", err)
			errs = append(errs, err)
			result.Failed++
			continue
		}

		b.logger.Debug("page built", "page", page.Name, "bytes", len(html))
		result.Files = append(result.Files, page.OutputFile())
		result.Bytes += len(html)
	}
	result.Duration = time.Since(start)

	b.logger.Info("build finished",
		"pages", len(result.Files),
		"failed", result.Failed,
		"bytes", result.Bytes,
		"duration", result.Duration.Round(time.Millisecond))

	if len(errs) > 0 {
		return result, crelerrors.New(ErrBuild.Code).
			WithDetailf("%d of %d pages failed", result.Failed, len(pages)).
			Wrap(errors.Join(errs...))
	}
	return result, nil
}

func (b *Builder) write(page Page, html []byte) error {
	out := filepath.Join(b.config.OutputDir, page.OutputFile())
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return crelerrors.New(ErrBuild.Code).WithPath(out).Wrap(err)
	}
	if err := os.WriteFile(out, html, 0644); err != nil {
		return crelerrors.New(ErrBuild.Code).WithPath(out).Wrap(err)
	}
	return nil
}
