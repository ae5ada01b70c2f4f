package analysis

import (
	domain "dealflow-backend/internal/domain/analysis"
)

var cashAdvantages = []string{
	"Quick closing",
	"Stronger offers",
	"No financing contingencies",
}

// fundingOptions is a pure mapping from valuation + property condition to
// per-channel financing eligibility and terms. Conventional lending is off
// the table for worst-tier condition regardless of the numbers; the cash
// recommendation is a heuristic, not an eligibility rule.
func (e *Engine) fundingOptions(v domain.ValuationResult, condition domain.Condition) domain.FundingOptions {
	return domain.FundingOptions{
		HardMoney: domain.FundingChannel{
			Eligible:      true,
			MaxLTV:        e.cfg.HardMoneyLTV,
			EstimatedRate: e.cfg.HardMoneyRate,
			MaxAmount:     v.ARV * e.cfg.HardMoneyLTV / 100,
			Terms:         "6-12 months",
		},
		Conventional: domain.FundingChannel{
			Eligible:      condition != domain.ConditionPoor,
			MaxLTV:        e.cfg.ConventionalLTV,
			EstimatedRate: e.cfg.ConventionalRate,
			MaxAmount:     v.ARV * e.cfg.ConventionalLTV / 100,
			Terms:         "30 years",
		},
		Portfolio: domain.FundingChannel{
			Eligible:      true,
			MaxLTV:        e.cfg.PortfolioLTV,
			EstimatedRate: e.cfg.PortfolioRate,
			MaxAmount:     v.ARV * e.cfg.PortfolioLTV / 100,
			Terms:         "15-30 years",
		},
		Cash: domain.CashOption{
			Recommended: v.MAO < e.cfg.CashThreshold,
			Advantages:  cashAdvantages,
		},
	}
}
