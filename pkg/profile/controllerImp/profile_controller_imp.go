package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kisan/entities"
	"kisan/pkg/advisory"
	"kisan/pkg/profile"
)

type ProfileCtrl struct{ store *profile.Store }

func New(store *profile.Store) *ProfileCtrl { return &ProfileCtrl{store} }

type saveReq struct {
	Crop           string   `json:"crop"`
	Stage          string   `json:"stage"` // empty = suggest from sowing date
	Location       string   `json:"location"`
	ObservedIssues []string `json:"observed_issues"`
	SowingDate     string   `json:"sowing_date"` // 2006-01-02
	Season         string   `json:"season"`
}

func (h *ProfileCtrl) Save(c echo.Context) error {
	var req saveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, ok := entities.ParseCropType(req.Crop)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown crop"})
	}
	sowing, err := time.Parse("2006-01-02", req.SowingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad sowing_date"})
	}

	stage := entities.CropStage(req.Stage)
	if req.Stage == "" {
		stage, err = advisory.SuggestStage(sowing, crop)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}

	p := entities.FarmerProfile{
		Crop:           crop,
		Stage:          stage,
		Location:       req.Location,
		ObservedIssues: req.ObservedIssues,
		SowingDate:     sowing,
		Season:         entities.Season(req.Season),
	}
	if err := h.store.Save(p); err != nil {
		if errors.Is(err, profile.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	p, err := h.store.Load()
	if err != nil {
		if errors.Is(err, profile.ErrNotSet) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "profile not set"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
