package source

import (
	"context"

	"github.com/komsit37/sg/pkg/sg/types"
)

// StaticSource returns the fixed reference result set. It consults no
// external input and never fails.
type StaticSource struct{}

func (StaticSource) Load(ctx context.Context) (types.ResultSet, error) { //nolint:revive
	return Reference(), nil
}

// Reference returns a fresh copy of the three reference records, in rank order.
func Reference() types.ResultSet {
	return types.ResultSet{
		{
			Symbol:        "NVDA",
			Company:       "NVIDIA Corporation",
			Sector:        "Technology - Semiconductors",
			CurrentPrice:  495.50,
			TargetPrice:   550.00,
			PotentialGain: 11.0,
			MarketCap:     "$1.22T",
			Catalysts: []string{
				"AI demand surge driving GPU sales",
				"Data center revenue up 279% YoY",
				"New Blackwell architecture launch Q4 2024",
				"Partnership expansion with cloud providers",
				"Strong Q3 earnings beat expectations",
			},
			Technical: types.Technical{
				RSI:           58,
				MovingAverage: "Above 50-day and 200-day MA",
				Momentum:      "Bullish",
			},
			Fundamentals: types.Fundamentals{
				PERatio:        52.3,
				RevenueGrowth:  "+122% YoY",
				EarningsGrowth: "+168% YoY",
			},
			Analyst: types.Analyst{Rating: "Strong Buy", PriceTarget: 550, Confidence: "High"},
		},
		{
			Symbol:        "META",
			Company:       "Meta Platforms Inc",
			Sector:        "Technology - Social Media",
			CurrentPrice:  485.20,
			TargetPrice:   540.00,
			PotentialGain: 11.3,
			MarketCap:     "$1.23T",
			Catalysts: []string{
				"AI-driven ad targeting improvements",
				"Reels monetization accelerating",
				"Cost efficiency initiatives showing results",
				"Reality Labs losses narrowing",
				"User engagement growth across platforms",
			},
			Technical: types.Technical{
				RSI:           62,
				MovingAverage: "Strong uptrend above all MAs",
				Momentum:      "Bullish",
			},
			Fundamentals: types.Fundamentals{
				PERatio:        26.8,
				RevenueGrowth:  "+23% YoY",
				EarningsGrowth: "+73% YoY",
			},
			Analyst: types.Analyst{Rating: "Buy", PriceTarget: 540, Confidence: "High"},
		},
		{
			Symbol:        "AVGO",
			Company:       "Broadcom Inc",
			Sector:        "Technology - Semiconductors",
			CurrentPrice:  168.75,
			TargetPrice:   190.00,
			PotentialGain: 12.6,
			MarketCap:     "$782B",
			Catalysts: []string{
				"VMware acquisition synergies materializing",
				"AI chip demand for custom solutions",
				"Strong networking and broadband demand",
				"Software revenue diversification",
				"Consistent dividend growth track record",
			},
			Technical: types.Technical{
				RSI:           55,
				MovingAverage: "Testing resistance at 200-day MA",
				Momentum:      "Neutral to Bullish",
			},
			Fundamentals: types.Fundamentals{
				PERatio:        35.2,
				RevenueGrowth:  "+47% YoY (with VMware)",
				EarningsGrowth: "+34% YoY",
			},
			Analyst: types.Analyst{Rating: "Buy", PriceTarget: 190, Confidence: "Medium-High"},
		},
	}
}
