package analysis

import (
	domain "dealflow-backend/internal/domain/analysis"
)

// The four evaluators below are pure: same inputs, same outputs, no state.
// Each takes the valuation plus the effective buy price (offer amount when
// supplied, else MAO). A non-positive buy price marks the result as "do not
// pursue" and zeroes ratio metrics instead of dividing by it.

func (e *Engine) wholesale(buyPrice float64) domain.StrategyResult {
	res := domain.StrategyResult{
		Strategy:  domain.StrategyWholesale,
		Available: true,
		Pursue:    buyPrice > 0,
		BuyPrice:  buyPrice,
		Profit:    e.cfg.WholesaleFee,
		Wholesale: &domain.WholesaleDetail{Fee: e.cfg.WholesaleFee},
	}
	if buyPrice > 0 {
		res.ROI = e.cfg.WholesaleFee / buyPrice * 100
	}
	return res
}

func (e *Engine) rehabFlip(v domain.ValuationResult, buyPrice float64, rehab domain.RehabBudget) domain.StrategyResult {
	gross := v.ARV - buyPrice - rehab.Total
	net := gross - v.ARV*e.cfg.HoldingCostRate

	res := domain.StrategyResult{
		Strategy:  domain.StrategyRehab,
		Available: true,
		Pursue:    buyPrice > 0,
		BuyPrice:  buyPrice,
		Profit:    net,
		Rehab: &domain.RehabDetail{
			RehabCost:   rehab.Total,
			GrossProfit: gross,
			NetProfit:   net,
		},
	}
	if invested := buyPrice + rehab.Total; invested > 0 {
		res.ROI = gross / invested * 100
	}
	return res
}

func (e *Engine) brrrr(v domain.ValuationResult, buyPrice float64, rehab domain.RehabBudget, market domain.MarketSnapshot) domain.StrategyResult {
	res := domain.StrategyResult{
		Strategy: domain.StrategyBRRRR,
		BuyPrice: buyPrice,
		Pursue:   buyPrice > 0,
	}
	if market.RentEstimate == nil {
		// Rent is required; mark this one strategy unavailable and let the
		// rest of the analysis proceed.
		res.Reason = domain.ReasonRentEstimateMissing
		return res
	}
	rent := *market.RentEstimate

	refinance := v.ARV * e.cfg.RefinanceLTV
	cashLeft := buyPrice + rehab.Total - refinance
	if cashLeft < 0 {
		cashLeft = 0
	}
	expenses := rent * e.cfg.ExpenseRatio
	cashFlow := rent - expenses

	// cashLeft == 0 means the refinance returns all capital; cash-on-cash is
	// reported as 0 rather than dividing by zero.
	var coc float64
	if cashLeft > 0 {
		coc = cashFlow * 12 / cashLeft * 100
	}

	res.Available = true
	res.Profit = cashFlow * 12
	res.ROI = coc
	res.BRRRR = &domain.BRRRRDetail{
		RehabCost:        rehab.Total,
		RefinanceAmount:  refinance,
		CashLeft:         cashLeft,
		MonthlyRent:      rent,
		MonthlyExpenses:  expenses,
		CashFlow:         cashFlow,
		CashOnCashReturn: coc,
	}
	return res
}

func (e *Engine) novation(v domain.ValuationResult, buyPrice float64, rehab domain.RehabBudget, market domain.MarketSnapshot) domain.StrategyResult {
	// Current market value falls back to a fixed share of ARV when no
	// third-party estimate exists (documented default, not a silent zero).
	current := v.ARV * e.cfg.NovationValueRatio
	if market.ValueEstimate != nil {
		current = *market.ValueEstimate
	}

	profit := (v.ARV - current) * e.cfg.NovationSplit
	improvement := rehab.Total * e.cfg.LightRehabFactor

	res := domain.StrategyResult{
		Strategy:  domain.StrategyNovation,
		Available: true,
		Pursue:    buyPrice > 0,
		BuyPrice:  buyPrice,
		Profit:    profit,
		Novation: &domain.NovationDetail{
			CurrentValue:    current,
			PotentialValue:  v.ARV,
			ImprovementCost: improvement,
			TimeframeMonths: e.cfg.NovationTimeframe,
		},
	}
	if current > 0 {
		res.ROI = profit / current * 100
	}
	return res
}
