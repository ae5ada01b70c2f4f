package analysis

import (
	"errors"
	"math"
	"time"

	domain "dealflow-backend/internal/domain/analysis"
)

// Engine runs one property analysis end to end: comparable aggregation,
// valuation, the four strategy evaluators and the funding evaluator. It holds
// no mutable state, so a single Engine is safe to share across goroutines.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine { return &Engine{cfg: cfg} }

// Input carries everything a single analysis needs. Comparables may be empty
// only when UseMarketFallback is set and the market snapshot carries a value
// estimate; otherwise the run aborts with ErrInsufficientData.
type Input struct {
	Facts       domain.PropertyFacts
	Comparables []domain.ComparableSale
	Market      domain.MarketSnapshot
	Rehab       domain.RehabBudget
	OfferAmount *float64
	// UseMarketFallback opts into valuing the property off the third-party
	// market estimate when no comparables are available.
	UseMarketFallback bool
}

// Run produces one immutable snapshot. Failure to value the property aborts
// the whole run; failure of an individual strategy only marks that strategy
// unavailable. Apart from AnalyzedAt the output is a deterministic function
// of the input.
func (e *Engine) Run(in Input) (*domain.AnalysisSnapshot, error) {
	if err := in.Rehab.Validate(); err != nil {
		return nil, err
	}

	valuation, err := e.value(in)
	if err != nil {
		return nil, err
	}

	buyPrice := valuation.MAO
	if in.OfferAmount != nil {
		buyPrice = *in.OfferAmount
	}

	// The evaluators are independent of one another; order here is not
	// observable in the result.
	strategies := []domain.StrategyResult{
		e.wholesale(buyPrice),
		e.rehabFlip(valuation, buyPrice, in.Rehab),
		e.brrrr(valuation, buyPrice, in.Rehab, in.Market),
		e.novation(valuation, buyPrice, in.Rehab, in.Market),
	}

	return &domain.AnalysisSnapshot{
		Facts:       in.Facts,
		Comparables: in.Comparables,
		Market:      in.Market,
		Rehab:       in.Rehab,
		Valuation:   valuation,
		Strategies:  strategies,
		Funding:     e.fundingOptions(valuation, in.Facts.Condition),
		OfferAmount: in.OfferAmount,
		AnalyzedAt:  time.Now().UTC(),
	}, nil
}

func (e *Engine) value(in Input) (domain.ValuationResult, error) {
	ppsf, err := AveragePricePerSqFt(in.Comparables)
	if err == nil {
		return e.valuation(ppsf, in.Facts.SquareFootage, in.Rehab, in.Market), nil
	}
	if !errors.Is(err, domain.ErrInsufficientData) {
		return domain.ValuationResult{}, err
	}

	// Fallback valuation path: only when explicitly selected and a market
	// estimate exists. An ARV of zero is never fabricated.
	if !in.UseMarketFallback || in.Market.ValueEstimate == nil {
		return domain.ValuationResult{}, domain.ErrInsufficientData
	}
	arv := math.Round(*in.Market.ValueEstimate)
	return domain.ValuationResult{
		ARV:       arv,
		AsIsValue: *in.Market.ValueEstimate,
		MAO:       math.Round(arv*e.cfg.MAORatio) - in.Rehab.Total,
	}, nil
}
