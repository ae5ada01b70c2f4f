package analysis

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrInsufficientData means no comparables were supplied and no fallback
	// valuation path was selected, so no ARV can be produced.
	ErrInsufficientData = errors.New("insufficient data for valuation")
	// ErrRehabBudgetMismatch means a fully specified breakdown does not sum
	// to the budget total.
	ErrRehabBudgetMismatch = errors.New("rehab budget breakdown does not sum to total")
)

type PropertyType string

const (
	PropertySingleFamily PropertyType = "single_family"
	PropertyMultiFamily  PropertyType = "multi_family"
	PropertyCondo        PropertyType = "condo"
	PropertyTownhouse    PropertyType = "townhouse"
	PropertyLand         PropertyType = "land"
	PropertyCommercial   PropertyType = "commercial"
)

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// PropertyFacts is the caller-supplied description of the subject property.
// Immutable once an analysis starts.
type PropertyFacts struct {
	Address       string       `json:"address"`
	City          string       `json:"city,omitempty"`
	State         string       `json:"state,omitempty"`
	ZipCode       string       `json:"zip_code,omitempty"`
	PropertyType  PropertyType `json:"property_type,omitempty"`
	Bedrooms      int          `json:"bedrooms,omitempty"`
	Bathrooms     float64      `json:"bathrooms,omitempty"`
	SquareFootage float64      `json:"square_footage"`
	LotSize       float64      `json:"lot_size,omitempty"`
	YearBuilt     int          `json:"year_built,omitempty"`
	Condition     Condition    `json:"condition,omitempty"`
}

// ComparableSale is one already-fetched comparable-sale observation.
type ComparableSale struct {
	Address       string    `json:"address"`
	SoldPrice     float64   `json:"sold_price"`
	SoldDate      time.Time `json:"sold_date,omitempty"`
	SquareFootage float64   `json:"square_footage"`
	Bedrooms      int       `json:"bedrooms,omitempty"`
	Bathrooms     float64   `json:"bathrooms,omitempty"`
	Distance      float64   `json:"distance,omitempty"`
	PricePerSqFt  float64   `json:"price_per_sqft,omitempty"`
	DaysOnMarket  int       `json:"days_on_market,omitempty"`
}

// EffectivePricePerSqFt returns the supplied price-per-square-foot, deriving
// it from sold price and area when the feed did not precompute it. Returns 0
// when neither is available.
func (c ComparableSale) EffectivePricePerSqFt() float64 {
	if c.PricePerSqFt > 0 {
		return c.PricePerSqFt
	}
	if c.SquareFootage > 0 {
		return c.SoldPrice / c.SquareFootage
	}
	return 0
}

// MarketSnapshot holds third-party market estimates. Nil pointer fields mean
// "unknown"; they are never coerced to zero.
type MarketSnapshot struct {
	ValueEstimate *float64 `json:"value_estimate,omitempty"`
	RentEstimate  *float64 `json:"rent_estimate,omitempty"`
	ListPrice     *float64 `json:"list_price,omitempty"`
	DaysOnMarket  *int     `json:"days_on_market,omitempty"`
}

// RehabBreakdown is the per-category renovation estimate.
type RehabBreakdown struct {
	Kitchen    float64 `json:"kitchen"`
	Bathrooms  float64 `json:"bathrooms"`
	Flooring   float64 `json:"flooring"`
	Paint      float64 `json:"paint"`
	Roof       float64 `json:"roof"`
	HVAC       float64 `json:"hvac"`
	Plumbing   float64 `json:"plumbing"`
	Electrical float64 `json:"electrical"`
	Windows    float64 `json:"windows"`
	Exterior   float64 `json:"exterior"`
	Other      float64 `json:"other"`
}

func (b RehabBreakdown) Sum() float64 {
	return b.Kitchen + b.Bathrooms + b.Flooring + b.Paint + b.Roof + b.HVAC +
		b.Plumbing + b.Electrical + b.Windows + b.Exterior + b.Other
}

// RehabBudget is the renovation estimate. Breakdown is optional (flat
// estimates carry only Total); when present it must sum to Total.
type RehabBudget struct {
	Total     float64         `json:"total"`
	Breakdown *RehabBreakdown `json:"breakdown,omitempty"`
}

func (r RehabBudget) Validate() error {
	if r.Breakdown == nil {
		return nil
	}
	if math.Abs(r.Breakdown.Sum()-r.Total) > 0.005 {
		return ErrRehabBudgetMismatch
	}
	return nil
}

// ValuationResult holds the derived value metrics. MAO may be negative when
// rehab cost exceeds 70% of ARV; that is a valid "do not pursue" signal.
type ValuationResult struct {
	ARV       float64 `json:"arv"`
	AsIsValue float64 `json:"as_is_value"`
	MAO       float64 `json:"mao"`
}

type Strategy string

const (
	StrategyWholesale Strategy = "wholesale"
	StrategyRehab     Strategy = "rehab"
	StrategyBRRRR     Strategy = "brrrr"
	StrategyNovation  Strategy = "novation"
)

// ReasonCode explains why a single strategy could not be evaluated.
type ReasonCode string

const (
	ReasonRentEstimateMissing ReasonCode = "rent_estimate_missing"
)

// WholesaleDetail carries the wholesale-specific inputs.
type WholesaleDetail struct {
	Fee float64 `json:"fee"`
}

type RehabDetail struct {
	RehabCost   float64 `json:"rehab_cost"`
	GrossProfit float64 `json:"gross_profit"`
	NetProfit   float64 `json:"net_profit"`
}

type BRRRRDetail struct {
	RehabCost        float64 `json:"rehab_cost"`
	RefinanceAmount  float64 `json:"refinance_amount"`
	CashLeft         float64 `json:"cash_left"`
	MonthlyRent      float64 `json:"monthly_rent"`
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	CashFlow         float64 `json:"cash_flow"`
	CashOnCashReturn float64 `json:"cash_on_cash_return"`
}

type NovationDetail struct {
	CurrentValue    float64 `json:"current_value"`
	PotentialValue  float64 `json:"potential_value"`
	ImprovementCost float64 `json:"improvement_cost"`
	TimeframeMonths int     `json:"timeframe_months"`
}

// StrategyResult is one strategy's projection. When a required input is
// unknown the result is marked unavailable with a reason code instead of the
// whole analysis failing. Pursue is false when the effective buy price is not
// positive (negative MAO, no offer).
type StrategyResult struct {
	Strategy  Strategy   `json:"strategy"`
	Available bool       `json:"available"`
	Reason    ReasonCode `json:"reason,omitempty"`
	Pursue    bool       `json:"pursue"`
	BuyPrice  float64    `json:"buy_price"`
	Profit    float64    `json:"profit"`
	ROI       float64    `json:"roi"`

	Wholesale *WholesaleDetail `json:"wholesale,omitempty"`
	Rehab     *RehabDetail     `json:"rehab,omitempty"`
	BRRRR     *BRRRRDetail     `json:"brrrr,omitempty"`
	Novation  *NovationDetail  `json:"novation,omitempty"`
}

// FundingChannel is one financing channel's eligibility and terms.
// MaxLTV and EstimatedRate are percentages.
type FundingChannel struct {
	Eligible      bool    `json:"eligible"`
	MaxLTV        float64 `json:"max_ltv"`
	EstimatedRate float64 `json:"estimated_rate"`
	MaxAmount     float64 `json:"max_amount"`
	Terms         string  `json:"terms"`
}

type CashOption struct {
	Recommended bool     `json:"recommended"`
	Advantages  []string `json:"advantages,omitempty"`
}

type FundingOptions struct {
	HardMoney    FundingChannel `json:"hard_money"`
	Conventional FundingChannel `json:"conventional"`
	Portfolio    FundingChannel `json:"portfolio"`
	Cash         CashOption     `json:"cash"`
}

// AnalysisSnapshot is the immutable aggregate produced by one analysis run.
// Re-analysis replaces a deal's snapshot wholesale; it is never mutated in
// place.
type AnalysisSnapshot struct {
	Facts       PropertyFacts    `json:"facts"`
	Comparables []ComparableSale `json:"comparables"`
	Market      MarketSnapshot   `json:"market"`
	Rehab       RehabBudget      `json:"rehab"`
	Valuation   ValuationResult  `json:"valuation"`
	Strategies  []StrategyResult `json:"strategies"`
	Funding     FundingOptions   `json:"funding"`
	OfferAmount *float64         `json:"offer_amount,omitempty"`
	AnalyzedAt  time.Time        `json:"analyzed_at"`
}

// StrategyByName returns the snapshot's result for one strategy, or nil.
func (s *AnalysisSnapshot) StrategyByName(name Strategy) *StrategyResult {
	for i := range s.Strategies {
		if s.Strategies[i].Strategy == name {
			return &s.Strategies[i]
		}
	}
	return nil
}
