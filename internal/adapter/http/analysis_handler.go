package http

import (
	"net/http"

	analysisdomain "dealflow-backend/internal/domain/analysis"
	"dealflow-backend/internal/usecase/analysis"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler exposes the engine standalone: run the numbers on a
// property without creating a deal.
type AnalysisHandler struct{ engine *analysis.Engine }

func NewAnalysisHandler(e *analysis.Engine) *AnalysisHandler { return &AnalysisHandler{engine: e} }

type analyzeReq struct {
	Facts             analysisdomain.PropertyFacts    `json:"facts"`
	Comparables       []analysisdomain.ComparableSale `json:"comparables"`
	Market            analysisdomain.MarketSnapshot   `json:"market"`
	Rehab             analysisdomain.RehabBudget      `json:"rehab"`
	OfferAmount       *float64                        `json:"offer_amount"`
	UseMarketFallback bool                            `json:"use_market_fallback"`
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req analyzeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Facts.Address == "" || req.Facts.SquareFootage <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: []FieldError{
			{Field: "facts", Message: "address and square_footage are required"},
		}})
	}

	snap, err := h.engine.Run(analysis.Input{
		Facts:             req.Facts,
		Comparables:       req.Comparables,
		Market:            req.Market,
		Rehab:             req.Rehab,
		OfferAmount:       req.OfferAmount,
		UseMarketFallback: req.UseMarketFallback,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}
