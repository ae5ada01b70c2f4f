package analysis

import (
	"math"
	"testing"

	domain "dealflow-backend/internal/domain/analysis"
)

func testEngine() *Engine { return NewEngine(DefaultConfig()) }

func TestWholesale(t *testing.T) {
	res := testEngine().wholesale(150_000)

	if !res.Available || !res.Pursue {
		t.Fatalf("unexpected flags: %+v", res)
	}
	if res.Profit != 10_000 {
		t.Fatalf("profit = %v, want the fixed fee 10000", res.Profit)
	}
	want := 10_000.0 / 150_000 * 100
	if math.Abs(res.ROI-want) > 1e-9 {
		t.Fatalf("roi = %v, want %v", res.ROI, want)
	}
}

func TestWholesale_NonPositiveBuyPrice(t *testing.T) {
	res := testEngine().wholesale(-20_000)

	if res.Pursue {
		t.Fatal("negative buy price must not be pursued")
	}
	if res.ROI != 0 {
		t.Fatalf("roi = %v, want 0 (no division by a negative price)", res.ROI)
	}
}

func TestRehabFlip(t *testing.T) {
	v := domain.ValuationResult{ARV: 288_220, MAO: 166_754}
	rehab := domain.RehabBudget{Total: 35_000}

	res := testEngine().rehabFlip(v, 150_000, rehab)

	gross := 288_220.0 - 150_000 - 35_000
	net := gross - 288_220*0.10
	roi := gross / (150_000 + 35_000) * 100

	if math.Abs(res.Rehab.GrossProfit-gross) > 1e-9 {
		t.Fatalf("gross = %v, want %v", res.Rehab.GrossProfit, gross)
	}
	if math.Abs(res.Rehab.NetProfit-net) > 1e-9 {
		t.Fatalf("net = %v, want %v", res.Rehab.NetProfit, net)
	}
	if math.Abs(res.ROI-roi) > 1e-9 {
		t.Fatalf("roi = %v, want %v", res.ROI, roi)
	}
	if res.Profit != res.Rehab.NetProfit {
		t.Fatalf("headline profit should be the net: %v vs %v", res.Profit, res.Rehab.NetProfit)
	}
}

func TestBRRRR(t *testing.T) {
	v := domain.ValuationResult{ARV: 288_220}
	rehab := domain.RehabBudget{Total: 35_000}
	market := domain.MarketSnapshot{RentEstimate: f64(2200)}

	res := testEngine().brrrr(v, 180_000, rehab, market)

	refinance := 288_220 * 0.75
	cashLeft := 180_000 + 35_000 - refinance
	cashFlow := 2200.0 - 2200*0.50
	coc := cashFlow * 12 / cashLeft * 100

	if !res.Available {
		t.Fatalf("unavailable: %+v", res)
	}
	d := res.BRRRR
	if math.Abs(d.RefinanceAmount-refinance) > 1e-9 {
		t.Fatalf("refinance = %v, want %v", d.RefinanceAmount, refinance)
	}
	if math.Abs(d.CashLeft-cashLeft) > 1e-9 {
		t.Fatalf("cashLeft = %v, want %v", d.CashLeft, cashLeft)
	}
	if math.Abs(d.CashFlow-cashFlow) > 1e-9 {
		t.Fatalf("cashFlow = %v, want %v", d.CashFlow, cashFlow)
	}
	if math.Abs(d.CashOnCashReturn-coc) > 1e-9 {
		t.Fatalf("coc = %v, want %v", d.CashOnCashReturn, coc)
	}
}

func TestBRRRR_ZeroCashLeftMeansZeroCoC(t *testing.T) {
	// refinance (0.75 * 200000 = 150000) covers buy+rehab (135000) fully
	v := domain.ValuationResult{ARV: 200_000}
	rehab := domain.RehabBudget{Total: 35_000}
	market := domain.MarketSnapshot{RentEstimate: f64(2000)}

	res := testEngine().brrrr(v, 100_000, rehab, market)

	if res.BRRRR.CashLeft != 0 {
		t.Fatalf("cashLeft = %v, want 0", res.BRRRR.CashLeft)
	}
	if res.BRRRR.CashOnCashReturn != 0 {
		t.Fatalf("coc = %v, want exactly 0 when no cash is left in", res.BRRRR.CashOnCashReturn)
	}
}

func TestBRRRR_MissingRentMarksUnavailable(t *testing.T) {
	v := domain.ValuationResult{ARV: 288_220}
	res := testEngine().brrrr(v, 150_000, domain.RehabBudget{Total: 35_000}, domain.MarketSnapshot{})

	if res.Available {
		t.Fatal("expected unavailable without a rent estimate")
	}
	if res.Reason != domain.ReasonRentEstimateMissing {
		t.Fatalf("reason = %q, want %q", res.Reason, domain.ReasonRentEstimateMissing)
	}
	if res.BRRRR != nil {
		t.Fatal("no detail should be attached to an unavailable result")
	}
}

func TestNovation(t *testing.T) {
	v := domain.ValuationResult{ARV: 288_220}
	rehab := domain.RehabBudget{Total: 35_000}
	market := domain.MarketSnapshot{ValueEstimate: f64(270_000)}

	res := testEngine().novation(v, 150_000, rehab, market)

	profit := (288_220.0 - 270_000) * 0.50
	if math.Abs(res.Profit-profit) > 1e-9 {
		t.Fatalf("profit = %v, want %v", res.Profit, profit)
	}
	if res.Novation.CurrentValue != 270_000 {
		t.Fatalf("currentValue = %v, want the market estimate", res.Novation.CurrentValue)
	}
	if math.Abs(res.Novation.ImprovementCost-17_500) > 1e-9 {
		t.Fatalf("improvementCost = %v, want 17500", res.Novation.ImprovementCost)
	}
	if res.Novation.TimeframeMonths != 6 {
		t.Fatalf("timeframe = %d, want fixed 6 months", res.Novation.TimeframeMonths)
	}
}

func TestNovation_CurrentValueFallback(t *testing.T) {
	v := domain.ValuationResult{ARV: 288_220}
	res := testEngine().novation(v, 150_000, domain.RehabBudget{Total: 35_000}, domain.MarketSnapshot{})

	want := 288_220 * 0.90
	if math.Abs(res.Novation.CurrentValue-want) > 1e-9 {
		t.Fatalf("currentValue = %v, want fallback %v", res.Novation.CurrentValue, want)
	}
	if !res.Available {
		t.Fatal("fallback is a documented default, not a missing input")
	}
}
