package types

// AnalysisResult is one analyzed instrument. Values are display-oriented:
// MarketCap and the growth fields are free text, and PotentialGain is
// supplied as-is rather than derived from the two prices.
type AnalysisResult struct {
	Symbol        string       `json:"symbol" yaml:"symbol"`
	Company       string       `json:"company" yaml:"company"`
	Sector        string       `json:"sector" yaml:"sector"`
	CurrentPrice  float64      `json:"currentPrice" yaml:"currentPrice"`
	TargetPrice   float64      `json:"targetPrice" yaml:"targetPrice"`
	PotentialGain float64      `json:"potentialGain" yaml:"potentialGain"`
	MarketCap     string       `json:"marketCap" yaml:"marketCap"`
	Catalysts     []string     `json:"catalysts" yaml:"catalysts"`
	Technical     Technical    `json:"technicalIndicators" yaml:"technicalIndicators"`
	Fundamentals  Fundamentals `json:"fundamentals" yaml:"fundamentals"`
	Analyst       Analyst      `json:"analyst" yaml:"analyst"`
}

// Technical holds the technical indicators shown on a panel.
type Technical struct {
	RSI           int    `json:"rsi" yaml:"rsi"`
	MovingAverage string `json:"movingAverage" yaml:"movingAverage"`
	Momentum      string `json:"momentum" yaml:"momentum"`
}

// Fundamentals holds the fundamental figures shown on a panel.
type Fundamentals struct {
	PERatio        float64 `json:"peRatio" yaml:"peRatio"`
	RevenueGrowth  string  `json:"revenueGrowth" yaml:"revenueGrowth"`
	EarningsGrowth string  `json:"earningsGrowth" yaml:"earningsGrowth"`
}

// Analyst is the consensus view. Rating and Confidence are free-text categories.
type Analyst struct {
	Rating      string  `json:"rating" yaml:"rating"`
	PriceTarget float64 `json:"priceTarget" yaml:"priceTarget"`
	Confidence  string  `json:"confidence" yaml:"confidence"`
}

// ResultSet is the ordered output of one analysis run.
type ResultSet []AnalysisResult

// Clone returns a deep copy so a committed set never shares catalyst slices
// with its producer.
func (s ResultSet) Clone() ResultSet {
	if s == nil {
		return nil
	}
	out := make(ResultSet, len(s))
	for i, r := range s {
		r.Catalysts = append([]string(nil), r.Catalysts...)
		out[i] = r
	}
	return out
}

// Symbols lists the symbols in set order.
func (s ResultSet) Symbols() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, r.Symbol)
	}
	return out
}

// Style is the visual flag applied to an RSI value.
type Style string

const (
	Favorable Style = "favorable"
	Caution   Style = "caution"
)

// RSIThreshold is the value an RSI must exceed to be flagged favorable.
const RSIThreshold = 50

// RSIStyle flags rsi > 50 as Favorable; everything else, including 50, is Caution.
func RSIStyle(rsi int) Style {
	if rsi > RSIThreshold {
		return Favorable
	}
	return Caution
}
