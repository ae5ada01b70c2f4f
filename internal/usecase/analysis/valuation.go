package analysis

import (
	"math"

	domain "dealflow-backend/internal/domain/analysis"
)

// valuation derives ARV, as-is value and MAO from an aggregated
// price-per-square-foot, the subject's area and the rehab budget.
//
//	arv = round(pricePerSqFt * area)
//	mao = round(arv * MAORatio) - rehab.Total
//
// MAO going negative is a legitimate result: it signals that rehab cost eats
// past the 70% ceiling, not an input error.
func (e *Engine) valuation(pricePerSqFt, area float64, rehab domain.RehabBudget, market domain.MarketSnapshot) domain.ValuationResult {
	arv := math.Round(pricePerSqFt * area)

	asIs := arv * e.cfg.AsIsRatio
	if market.ValueEstimate != nil {
		asIs = *market.ValueEstimate
	}

	return domain.ValuationResult{
		ARV:       arv,
		AsIsValue: asIs,
		MAO:       math.Round(arv*e.cfg.MAORatio) - rehab.Total,
	}
}
