package analysis

// Config holds every tunable the engine uses. Values are ratios unless the
// name says otherwise; LTV and rate fields are percentages as quoted by
// lenders.
type Config struct {
	MAORatio   float64 // the "70% rule"
	AsIsRatio  float64 // as-is fallback as a share of ARV

	WholesaleFee float64

	HoldingCostRate float64 // share of ARV reserved for holding/closing

	RefinanceLTV float64 // BRRRR refinance as a share of ARV
	ExpenseRatio float64 // share of rent consumed by operating expenses

	NovationSplit      float64 // seller/investor profit split
	LightRehabFactor   float64 // novation improvement cost as a share of full rehab
	NovationValueRatio float64 // current-value fallback as a share of ARV
	NovationTimeframe  int     // months, fixed, not derived

	HardMoneyLTV     float64
	HardMoneyRate    float64
	ConventionalLTV  float64
	ConventionalRate float64
	PortfolioLTV     float64
	PortfolioRate    float64

	// Cash is recommended when MAO falls below this absolute amount.
	CashThreshold float64
}

func DefaultConfig() Config {
	return Config{
		MAORatio:  0.70,
		AsIsRatio: 0.85,

		WholesaleFee: 10_000,

		HoldingCostRate: 0.10,

		RefinanceLTV: 0.75,
		ExpenseRatio: 0.50,

		NovationSplit:      0.50,
		LightRehabFactor:   0.50,
		NovationValueRatio: 0.90,
		NovationTimeframe:  6,

		HardMoneyLTV:     75,
		HardMoneyRate:    12.5,
		ConventionalLTV:  80,
		ConventionalRate: 7.5,
		PortfolioLTV:     75,
		PortfolioRate:    8.5,

		CashThreshold: 200_000,
	}
}
