package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/cuihairu/ludotheque/internal/ports"
)

//go:embed templates
var embedded embed.FS

const (
	layoutFile  = "layout.html"
	partialsDir = "partials"
	pagesDir    = "pages"
)

// Renderer renders named pages ("games/index" -> pages/games/index.html) inside the layout.
type Renderer struct {
	fsys fs.FS

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// New loads templates from dir, or from the embedded set when dir is empty.
func New(dir string) (*Renderer, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	r := &Renderer{fsys: fsys}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses every page. On error the previous set stays in use.
func (r *Renderer) Reload() error {
	partials, err := fs.Glob(r.fsys, path.Join(partialsDir, "*.html"))
	if err != nil {
		return err
	}
	pages := map[string]*template.Template{}
	err = fs.WalkDir(r.fsys, pagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}
		files := append([]string{layoutFile}, partials...)
		files = append(files, p)
		t, err := template.New("").Funcs(funcs).ParseFS(r.fsys, files...)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, pagesDir+"/"), ".html")
		pages[name] = t
		return nil
	})
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.pages = pages
	r.mu.Unlock()
	return nil
}

// Has reports whether a page is loaded.
func (r *Renderer) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pages[name]
	return ok
}

// Render executes the layout for page name. Output may be partial on error.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	r.mu.RLock()
	t, ok := r.pages[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

var funcs = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("02/01/2006")
	},
	"isoDate": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(time.DateOnly)
	},
	"selected": func(ref ports.Ref, id uint) bool { return ref.Is(id) },
}
