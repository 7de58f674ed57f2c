package ui

import (
	"fmt"
	"strings"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/komsit37/sg/pkg/sg/render"
	"github.com/komsit37/sg/pkg/sg/types"
)

const hint = "Press a or Enter to analyze, j/k to scroll, q to quit."

// Screen is the set of widgets drawn for one frame.
type Screen struct {
	Header *widgets.Paragraph
	Action *widgets.Paragraph
	Body   *widgets.List
}

// Layout builds the widgets for p sized to a width x height terminal.
func Layout(p render.Page, width, height int) *Screen {
	header := widgets.NewParagraph()
	header.Title = p.Header.Title
	header.TitleStyle = termui.NewStyle(termui.ColorCyan, termui.ColorClear, termui.ModifierBold)
	header.Text = p.Header.Subtitle + "\n" + "Analysis Date: " + p.Header.Date
	header.SetRect(0, 0, width, 4)

	action := widgets.NewParagraph()
	if p.Action.Disabled {
		action.Text = "[" + p.Action.Label + "](fg:yellow)"
		action.BorderStyle.Fg = termui.ColorYellow
	} else {
		action.Text = "[" + p.Action.Label + "](fg:cyan,mod:bold)"
		action.BorderStyle.Fg = termui.ColorCyan
	}
	action.SetRect(0, 4, width, 7)

	body := widgets.NewList()
	body.Rows = BodyRows(p)
	body.WrapText = true
	body.SelectedRowStyle = termui.NewStyle(termui.ColorWhite)
	body.SetRect(0, 7, width, height)

	return &Screen{Header: header, Action: action, Body: body}
}

// Drawables returns the widgets in draw order.
func (s *Screen) Drawables() []termui.Drawable {
	return []termui.Drawable{s.Header, s.Action, s.Body}
}

// BodyRows flattens the page body into termui-styled rows.
func BodyRows(p render.Page) []string {
	var rows []string
	if p.Error != "" {
		rows = append(rows, "[Analysis failed: "+p.Error+"](fg:red,mod:bold)", "")
	}
	if p.Methodology == nil && len(p.Panels) == 0 && p.Disclaimer == nil {
		return append(rows, hint)
	}
	if m := p.Methodology; m != nil {
		rows = append(rows, "["+m.Title+"](fg:blue,mod:bold)")
		for _, s := range m.Sections {
			rows = append(rows, fmt.Sprintf("  [%s](fg:blue): %s", s.Title, strings.Join(s.Items, "; ")))
		}
		rows = append(rows, "")
	}
	for _, panel := range p.Panels {
		rows = append(rows, panelRows(panel)...)
		rows = append(rows, "")
	}
	if d := p.Disclaimer; d != nil {
		rows = append(rows, "[! "+d.Title+"](fg:yellow,mod:bold)", d.Text)
	}
	return rows
}

func panelRows(p render.Panel) []string {
	rows := []string{
		fmt.Sprintf("[#%d %s](fg:cyan,mod:bold) %s", p.Rank, p.Symbol, p.Company),
		"  " + p.Sector,
		fmt.Sprintf("  Current $%s  Target [$%s](fg:green)  Potential Gain [%s](fg:green,mod:bold)",
			p.CurrentPrice, p.TargetPrice, p.PotentialGain),
		fmt.Sprintf("  Market Cap %s  Analyst [%s](fg:blue) (%s Confidence)", p.MarketCap, p.Rating, p.Confidence),
		fmt.Sprintf("  RSI [%d](fg:%s)  Moving Average: %s  Momentum: [%s](fg:green)",
			p.RSI, rsiColor(p.RSIStyle), p.MovingAverage, p.Momentum),
		fmt.Sprintf("  P/E %s  Revenue Growth [%s](fg:green)  Earnings Growth [%s](fg:green)",
			p.PERatio, p.RevenueGrowth, p.EarningsGrowth),
		"  Growth Catalysts:",
	}
	for _, c := range p.Catalysts {
		rows = append(rows, "    [✓](fg:green) "+c)
	}
	return rows
}

func rsiColor(s types.Style) string {
	if s == types.Favorable {
		return "green"
	}
	return "yellow"
}
