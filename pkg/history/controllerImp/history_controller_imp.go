package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisan/entities"
	"kisan/pkg/history"
)

type HistoryCtrl struct{ store *history.Store }

func New(store *history.Store) *HistoryCtrl { return &HistoryCtrl{store} }

func (h *HistoryCtrl) List(c echo.Context) error {
	list, err := h.store.All()
	if err != nil {
		// reads fail open
		list = nil
	}
	if list == nil {
		list = []entities.AlertRecord{}
	}
	return c.JSON(http.StatusOK, list)
}

type actionReq struct {
	Status entities.ActionStatus `json:"status"`
}

func (h *HistoryCtrl) PatchAction(c echo.Context) error {
	var req actionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Status != entities.ActionTaken && req.Status != entities.ActionNotTaken {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be TAKEN or NOT_TAKEN"})
	}
	if err := h.store.UpdateActionStatus(c.Param("id"), req.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HistoryCtrl) Feedback(c echo.Context) error {
	if err := h.store.UpdateFeedback(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HistoryCtrl) Clear(c echo.Context) error {
	if err := h.store.Clear(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *HistoryCtrl) LastAlert(c echo.Context) error {
	rec, err := h.store.LastAlert()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no alert yet"})
	}
	return c.JSON(http.StatusOK, rec)
}
