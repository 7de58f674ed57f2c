package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/sg/pkg/sg/types"
)

// TextRenderer draws the page as terminal text using go-pretty tables.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

// paint applies colors only when enabled.
type paint bool

func (p paint) with(c text.Colors, s string) string {
	if !p {
		return s
	}
	return c.Sprint(s)
}

var (
	colorTitle     = text.Colors{text.Bold, text.FgHiCyan}
	colorHeading   = text.Colors{text.Bold, text.FgHiBlue}
	colorMuted     = text.Colors{text.FgHiBlack}
	colorGain      = text.Colors{text.Bold, text.FgGreen}
	colorFavorable = text.Colors{text.FgGreen}
	colorCaution   = text.Colors{text.FgYellow}
	colorWarn      = text.Colors{text.Bold, text.FgYellow}
	colorError     = text.Colors{text.Bold, text.FgRed}
)

// RSIColor returns the color for an RSI style.
func RSIColor(s types.Style) text.Colors {
	if s == types.Favorable {
		return colorFavorable
	}
	return colorCaution
}

func (r *TextRenderer) Render(w io.Writer, p Page, opts RenderOptions) error {
	var b strings.Builder
	pt := paint(opts.Color)

	fmt.Fprintln(&b, pt.with(colorTitle, strings.ToUpper(p.Header.Title)))
	fmt.Fprintln(&b, p.Header.Subtitle)
	fmt.Fprintln(&b, pt.with(colorMuted, "Analysis Date: "+p.Header.Date))
	fmt.Fprintln(&b)

	if p.Action.Disabled {
		fmt.Fprintln(&b, pt.with(colorMuted, "[ ... "+p.Action.Label+" ]"))
	} else {
		fmt.Fprintln(&b, pt.with(colorHeading, "[ "+p.Action.Label+" ]"))
	}

	if p.Error != "" {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, pt.with(colorError, "Analysis failed: "+p.Error))
	}

	if p.Methodology != nil {
		fmt.Fprintln(&b)
		writeMethodology(&b, *p.Methodology, pt, opts.Width)
	}

	for _, panel := range p.Panels {
		fmt.Fprintln(&b)
		writePanel(&b, panel, pt, opts.Width)
	}

	if p.Disclaimer != nil {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, pt.with(colorWarn, "! "+p.Disclaimer.Title))
		wrap := opts.Width
		if wrap <= 0 {
			wrap = 100
		}
		fmt.Fprintln(&b, text.WrapSoft(p.Disclaimer.Text, wrap))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func newTable(width int) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = false
	if width > 0 {
		tw.SetAllowedRowLength(width)
	}
	return tw
}

func writeMethodology(b *strings.Builder, m Block, pt paint, width int) {
	fmt.Fprintln(b, pt.with(colorHeading, m.Title))
	tw := newTable(width)
	hdr := make(table.Row, len(m.Sections))
	rows := 0
	for i, s := range m.Sections {
		hdr[i] = s.Title
		if len(s.Items) > rows {
			rows = len(s.Items)
		}
	}
	tw.AppendHeader(hdr)
	for r := 0; r < rows; r++ {
		row := make(table.Row, len(m.Sections))
		for i, s := range m.Sections {
			if r < len(s.Items) {
				row[i] = "• " + s.Items[r]
			} else {
				row[i] = ""
			}
		}
		tw.AppendRow(row)
	}
	fmt.Fprintln(b, tw.Render())
}

func writePanel(b *strings.Builder, p Panel, pt paint, width int) {
	fmt.Fprintf(b, "%s  %s  %s\n",
		pt.with(colorTitle, fmt.Sprintf("#%d", p.Rank)),
		pt.with(text.Colors{text.Bold}, p.Symbol),
		p.Company)
	fmt.Fprintln(b, pt.with(colorMuted, p.Sector))

	tw := newTable(width)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, WidthMax: 40},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, WidthMax: 40},
	})
	tw.AppendRows([]table.Row{
		{"Current Price", "$" + p.CurrentPrice, "RSI", pt.with(RSIColor(p.RSIStyle), fmt.Sprint(p.RSI))},
		{"Target Price", pt.with(colorFavorable, "$"+p.TargetPrice), "Moving Average", p.MovingAverage},
		{"Potential Gain", pt.with(colorGain, p.PotentialGain), "Momentum", pt.with(colorFavorable, p.Momentum)},
		{"Market Cap", p.MarketCap, "P/E Ratio", p.PERatio},
		{"Analyst Rating", pt.with(colorHeading, p.Rating), "Revenue Growth", pt.with(colorFavorable, p.RevenueGrowth)},
		{"Confidence", p.Confidence + " Confidence", "Earnings Growth", pt.with(colorFavorable, p.EarningsGrowth)},
	})
	fmt.Fprintln(b, tw.Render())

	fmt.Fprintln(b, pt.with(colorHeading, "Growth Catalysts"))
	for _, c := range p.Catalysts {
		fmt.Fprintf(b, "  %s %s\n", pt.with(colorFavorable, "✓"), c)
	}
}
