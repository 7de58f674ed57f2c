package render

import (
	"strconv"
	"time"

	"github.com/komsit37/sg/pkg/sg/filter"
	"github.com/komsit37/sg/pkg/sg/types"
	"github.com/komsit37/sg/pkg/sg/view"
)

const (
	Title      = "Stock Growth Analyzer"
	Subtitle   = "Top 3 US Stocks with 10%+ Growth Potential (Next 3 Months)"
	IdleLabel  = "Analyze Top Growth Stocks"
	BusyLabel  = "Analyzing Markets..."
	DateLayout = "January 2, 2006"
)

// Page is the visual tree derived from one view snapshot.
type Page struct {
	Header      Header  `json:"header" yaml:"header"`
	Action      Action  `json:"action" yaml:"action"`
	Methodology *Block  `json:"methodology,omitempty" yaml:"methodology,omitempty"`
	Panels      []Panel `json:"panels,omitempty" yaml:"panels,omitempty"`
	Disclaimer  *Block  `json:"disclaimer,omitempty" yaml:"disclaimer,omitempty"`
	Error       string  `json:"error,omitempty" yaml:"error,omitempty"`
}

type Header struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Date     string `json:"date" yaml:"date"`
}

// Action is the analyze control.
type Action struct {
	Label    string `json:"label" yaml:"label"`
	Disabled bool   `json:"disabled" yaml:"disabled"`
	Busy     bool   `json:"busy" yaml:"busy"`
}

// Block is static titled content. Sections may be empty.
type Block struct {
	Title    string    `json:"title" yaml:"title"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

type Section struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// Panel is the formatted detail of one result.
type Panel struct {
	Rank           int         `json:"rank" yaml:"rank"`
	Symbol         string      `json:"symbol" yaml:"symbol"`
	Company        string      `json:"company" yaml:"company"`
	Sector         string      `json:"sector" yaml:"sector"`
	CurrentPrice   string      `json:"currentPrice" yaml:"currentPrice"`
	TargetPrice    string      `json:"targetPrice" yaml:"targetPrice"`
	PotentialGain  string      `json:"potentialGain" yaml:"potentialGain"`
	MarketCap      string      `json:"marketCap" yaml:"marketCap"`
	Rating         string      `json:"rating" yaml:"rating"`
	Confidence     string      `json:"confidence" yaml:"confidence"`
	Catalysts      []string    `json:"catalysts" yaml:"catalysts"`
	RSI            int         `json:"rsi" yaml:"rsi"`
	RSIStyle       types.Style `json:"rsiStyle" yaml:"rsiStyle"`
	MovingAverage  string      `json:"movingAverage" yaml:"movingAverage"`
	Momentum       string      `json:"momentum" yaml:"momentum"`
	PERatio        string      `json:"peRatio" yaml:"peRatio"`
	RevenueGrowth  string      `json:"revenueGrowth" yaml:"revenueGrowth"`
	EarningsGrowth string      `json:"earningsGrowth" yaml:"earningsGrowth"`
}

// BuildOptions tune Build. A nil Filter keeps every panel; a zero Now
// uses the current time.
type BuildOptions struct {
	Filter filter.Filter
	Now    time.Time
}

// Build derives the page for snap. It has no side effects.
func Build(snap view.Snapshot, opts BuildOptions) Page {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	p := Page{
		Header: Header{Title: Title, Subtitle: Subtitle, Date: now.Format(DateLayout)},
		Action: Action{Label: IdleLabel},
	}
	if snap.Busy() {
		p.Action = Action{Label: BusyLabel, Disabled: true, Busy: true}
	}
	if snap.State == view.Failed && snap.Err != nil {
		p.Error = snap.Err.Error()
	}
	if !snap.Completed() {
		return p
	}
	if !snap.Busy() {
		m := Methodology()
		p.Methodology = &m
		for i, r := range snap.Results {
			if opts.Filter != nil && !filter.Any(opts.Filter, r.Symbol, r.Sector) {
				continue
			}
			p.Panels = append(p.Panels, NewPanel(i+1, r))
		}
	}
	d := Disclaimer()
	p.Disclaimer = &d
	return p
}

// NewPanel formats r as the panel at 1-based rank.
func NewPanel(rank int, r types.AnalysisResult) Panel {
	return Panel{
		Rank:           rank,
		Symbol:         r.Symbol,
		Company:        r.Company,
		Sector:         r.Sector,
		CurrentPrice:   Price(r.CurrentPrice),
		TargetPrice:    Price(r.TargetPrice),
		PotentialGain:  Gain(r.PotentialGain),
		MarketCap:      r.MarketCap,
		Rating:         r.Analyst.Rating,
		Confidence:     r.Analyst.Confidence,
		Catalysts:      append([]string(nil), r.Catalysts...),
		RSI:            r.Technical.RSI,
		RSIStyle:       types.RSIStyle(r.Technical.RSI),
		MovingAverage:  r.Technical.MovingAverage,
		Momentum:       r.Technical.Momentum,
		PERatio:        Decimal(r.Fundamentals.PERatio),
		RevenueGrowth:  r.Fundamentals.RevenueGrowth,
		EarningsGrowth: r.Fundamentals.EarningsGrowth,
	}
}

// Price formats v with exactly two decimals.
func Price(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// Decimal formats v with the fewest digits that round-trip: 11 -> "11", 52.3 -> "52.3".
func Decimal(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Gain formats a percentage with an explicit sign: 11 -> "+11%", -4.5 -> "-4.5%".
func Gain(v float64) string {
	if v < 0 {
		return Decimal(v) + "%"
	}
	return "+" + Decimal(v) + "%"
}

// Methodology is the fixed methodology block.
func Methodology() Block {
	return Block{
		Title: "Analysis Methodology",
		Sections: []Section{
			{Title: "Technical Analysis", Items: []string{"RSI momentum indicators", "Moving average trends", "Volume patterns"}},
			{Title: "Fundamental Analysis", Items: []string{"Revenue & earnings growth", "P/E ratio evaluation", "Market position strength"}},
			{Title: "Catalyst Identification", Items: []string{"Upcoming product launches", "Market trends alignment", "Analyst consensus"}},
		},
	}
}

// Disclaimer is the fixed investment disclaimer block.
func Disclaimer() Block {
	return Block{
		Title: "Investment Disclaimer",
		Text: "This analysis is for informational and educational purposes only and should not be considered as financial advice. " +
			"Stock market investments carry inherent risks, and past performance does not guarantee future results. " +
			"The projections and estimates provided are based on current market conditions, technical analysis, and publicly available information, " +
			"which can change rapidly. Always conduct your own research, consider your risk tolerance, and consult with a qualified financial " +
			"advisor before making any investment decisions. The author and platform assume no responsibility for any financial losses " +
			"incurred from acting on this information.",
	}
}
