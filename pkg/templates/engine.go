package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/osteele/liquid"
)

// Engine renders named Liquid templates loaded from a filesystem.
// Compiled templates are cached; the zero value is not usable, use New.
// Safe for concurrent use.
type Engine struct {
	fsys   fs.FS
	engine *liquid.Engine
	cache  sync.Map // name -> *liquid.Template
}

// New creates an Engine that resolves templates against fsys. A nil fsys is
// allowed when every template is registered with RegisterString.
func New(fsys fs.FS) *Engine {
	return &Engine{
		fsys:   fsys,
		engine: liquid.NewEngine(),
	}
}

// Path returns the filesystem path a template name resolves to. The
// "emails/<name>.html" convention is part of the package contract.
func Path(name string) string {
	return "emails/" + name + ".html"
}

// RegisterString compiles source and registers it under name, bypassing the
// filesystem. Registering an existing name replaces the cached template.
func (e *Engine) RegisterString(name, source string) error {
	tpl, err := e.engine.ParseTemplate([]byte(source))
	if err != nil {
		return fmt.Errorf("%w: template %q: %v", ErrParseFailed, name, err)
	}
	e.cache.Store(name, tpl)
	return nil
}

// Render resolves name, renders it with data, and returns the HTML output.
// A template that cannot be resolved returns ErrTemplateNotFound.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	tpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}

	out, renderErr := tpl.RenderString(data)
	if renderErr != nil {
		return "", fmt.Errorf("%w: template %q: %v", ErrRenderFailed, name, renderErr)
	}
	return out, nil
}

func (e *Engine) lookup(name string) (*liquid.Template, error) {
	if cached, ok := e.cache.Load(name); ok {
		return cached.(*liquid.Template), nil
	}

	if e.fsys == nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	source, err := fs.ReadFile(e.fsys, Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("%w: %q: %v", ErrTemplateNotFound, name, err)
	}

	tpl, parseErr := e.engine.ParseTemplate(source)
	if parseErr != nil {
		return nil, fmt.Errorf("%w: template %q: %v", ErrParseFailed, name, parseErr)
	}

	// Two goroutines racing here both parse; the cache keeps one copy either way.
	actual, _ := e.cache.LoadOrStore(name, tpl)
	return actual.(*liquid.Template), nil
}
