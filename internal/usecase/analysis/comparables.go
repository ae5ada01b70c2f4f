package analysis

import (
	domain "dealflow-backend/internal/domain/analysis"
)

// AveragePricePerSqFt reduces a set of comparable sales to a single
// price-per-square-foot estimate. All comparables are weighted equally and no
// outliers are rejected (known limitation of the model, kept on purpose).
// An empty set returns ErrInsufficientData; callers must pick a fallback
// valuation source or abort.
func AveragePricePerSqFt(comps []domain.ComparableSale) (float64, error) {
	if len(comps) == 0 {
		return 0, domain.ErrInsufficientData
	}
	var sum float64
	for _, c := range comps {
		sum += c.EffectivePricePerSqFt()
	}
	return sum / float64(len(comps)), nil
}
