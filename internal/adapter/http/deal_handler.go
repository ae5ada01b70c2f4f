package http

import (
	"net/http"

	analysisdomain "dealflow-backend/internal/domain/analysis"
	"dealflow-backend/internal/usecase/deal"

	"github.com/labstack/echo/v4"
)

type DealHandler struct{ uc *deal.Usecase }

func NewDealHandler(uc *deal.Usecase) *DealHandler { return &DealHandler{uc: uc} }

type createDealReq struct {
	Facts       analysisdomain.PropertyFacts `json:"facts"`
	Analysis    *deal.AnalysisInput          `json:"analysis"`
	OfferAmount *float64                     `json:"offer_amount"`
	AssignedTo  string                       `json:"assigned_to"`
	ActorID     string                       `json:"actor_id" validate:"required,hex32"`
}

func (h *DealHandler) CreateDeal(c echo.Context) error {
	var req createDealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if req.Facts.Address == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: []FieldError{{Field: "facts.address", Message: "is required"}}})
	}

	dto, err := h.uc.Create(c.Request().Context(), deal.CreateDealInput{
		Facts:       req.Facts,
		Analysis:    req.Analysis,
		OfferAmount: req.OfferAmount,
		AssignedTo:  req.AssignedTo,
		ActorID:     req.ActorID,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DealHandler) ListDeals(c echo.Context) error {
	in := deal.ListInput{
		Status:     c.QueryParam("status"),
		AssignedTo: c.QueryParam("assigned_to"),
	}
	echo.QueryParamsBinder(c).Int("page", &in.Page).Int("limit", &in.Limit)

	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateStatusReq struct {
	Status  string `json:"status" validate:"required,pipeline_status"`
	Note    string `json:"note"`
	ActorID string `json:"actor_id" validate:"required,hex32"`
}

func (h *DealHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Transition(c.Request().Context(), c.Param("deal_id"), req.Status, req.Note, req.ActorID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type submitOfferReq struct {
	Amount  float64 `json:"amount" validate:"required,gt=0,dec2"`
	ActorID string  `json:"actor_id" validate:"required,hex32"`
}

func (h *DealHandler) SubmitOffer(c echo.Context) error {
	var req submitOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.SubmitOffer(c.Request().Context(), c.Param("deal_id"), req.Amount, req.ActorID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type reanalyzeReq struct {
	OfferAmount       *float64                        `json:"offer_amount"`
	Comparables       []analysisdomain.ComparableSale `json:"comparables"`
	Market            analysisdomain.MarketSnapshot   `json:"market"`
	Rehab             analysisdomain.RehabBudget      `json:"rehab"`
	UseMarketFallback bool                            `json:"use_market_fallback"`
	ActorID           string                          `json:"actor_id" validate:"required,hex32"`
}

func (h *DealHandler) Reanalyze(c echo.Context) error {
	var req reanalyzeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Reanalyze(c.Request().Context(), c.Param("deal_id"), deal.ReanalyzeInput{
		OfferAmount:       req.OfferAmount,
		Comparables:       req.Comparables,
		Market:            req.Market,
		Rehab:             req.Rehab,
		UseMarketFallback: req.UseMarketFallback,
		ActorID:           req.ActorID,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type addActivityReq struct {
	Action      string `json:"action"`
	Description string `json:"description" validate:"required"`
	ActorID     string `json:"actor_id" validate:"required,hex32"`
}

func (h *DealHandler) AddActivity(c echo.Context) error {
	var req addActivityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.AddActivity(c.Request().Context(), c.Param("deal_id"), req.Action, req.Description, req.ActorID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DealHandler) DeleteDeal(c echo.Context) error {
	actorID := c.QueryParam("actor_id")
	if !reHex32.MatchString(actorID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actor_id"})
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("deal_id"), actorID); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DealHandler) StatusBreakdown(c echo.Context) error {
	counts, err := h.uc.StatusBreakdown(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"status_breakdown": counts})
}
