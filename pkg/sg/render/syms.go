package render

import (
	"fmt"
	"io"
	"strings"
)

// symsRenderer prints the visible panel symbols on one comma-separated line.
// Frames without panels print an empty line.
type symsRenderer struct{}

func NewSymsRenderer() Renderer { return symsRenderer{} }

func (symsRenderer) Render(w io.Writer, p Page, _ RenderOptions) error {
	symbols := make([]string, 0, len(p.Panels))
	for _, panel := range p.Panels {
		if sym := strings.TrimSpace(panel.Symbol); sym != "" {
			symbols = append(symbols, sym)
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(symbols, ","))
	return err
}
