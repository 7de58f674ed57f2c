package render

import (
	"io"
	"sort"
	"strings"
)

// Renderer writes a page to an output writer.
type Renderer interface {
	Render(w io.Writer, p Page, opts RenderOptions) error
}

type RenderOptions struct {
	Color      bool
	PrettyJSON bool
	// Width caps text rows; zero means unlimited.
	Width int
}

var renderers = map[string]func() Renderer{
	"text": func() Renderer { return NewTextRenderer() },
	"json": func() Renderer { return NewJSONRenderer() },
	"yaml": func() Renderer { return NewYAMLRenderer() },
	"syms": NewSymsRenderer,
}

// ByFormat returns the renderer registered for name.
func ByFormat(name string) (Renderer, error) {
	mk, ok := renderers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &UnknownFormatError{Name: name, Available: Formats()}
	}
	return mk(), nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(renderers))
	for k := range renderers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// UnknownFormatError reports an unknown output format.
type UnknownFormatError struct {
	Name      string
	Available []string
}

func (e *UnknownFormatError) Error() string {
	return "unknown format: " + e.Name + "; available: " + strings.Join(e.Available, ", ")
}
