package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisan/entities"
	"kisan/pkg/market"
)

type MarketCtrl struct{ svc *market.Service }

func New(svc *market.Service) *MarketCtrl { return &MarketCtrl{svc} }

func (h *MarketCtrl) Price(c echo.Context) error {
	crop, ok := entities.ParseCropType(c.QueryParam("crop"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown crop"})
	}
	p, err := h.svc.Price(crop, c.QueryParam("location"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

type transactionReq struct {
	Type     string  `json:"type"`
	Crop     string  `json:"crop"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

func (h *MarketCtrl) CreateTransaction(c echo.Context) error {
	var req transactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Type != "BUY" && req.Type != "SELL" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "type must be BUY or SELL"})
	}
	crop, ok := entities.ParseCropType(req.Crop)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown crop"})
	}
	t, err := h.svc.RecordTransaction(entities.Transaction{
		Type:     req.Type,
		Crop:     crop,
		Quantity: req.Quantity,
		Price:    req.Price,
		Status:   "PENDING",
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *MarketCtrl) ListTransactions(c echo.Context) error {
	list, err := h.svc.Transactions()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if list == nil {
		list = []entities.Transaction{}
	}
	return c.JSON(http.StatusOK, list)
}
