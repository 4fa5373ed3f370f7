package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kisan/entities"
	"kisan/pkg/advisory"
	"kisan/pkg/profile"
	"kisan/pkg/weather"
)

// SignalCtrl drives the advisory endpoints. The simulator screen can pass an
// inline weather snapshot; otherwise the provider (with last-good cache) is
// used.
type SignalCtrl struct {
	svc      *advisory.Service
	profiles *profile.Store
	weather  *weather.Service
	lang     string
}

func New(svc *advisory.Service, profiles *profile.Store, w *weather.Service, defaultLang string) *SignalCtrl {
	return &SignalCtrl{svc: svc, profiles: profiles, weather: w, lang: defaultLang}
}

type signalReq struct {
	Lang    string                    `json:"lang"`
	Weather *entities.WeatherSnapshot `json:"weather"` // simulator override
}

func (h *SignalCtrl) resolve(c echo.Context, req signalReq) (entities.FarmerProfile, entities.WeatherSnapshot, string, error) {
	p, err := h.profiles.Load()
	if err != nil {
		return entities.FarmerProfile{}, entities.WeatherSnapshot{}, "", err
	}
	lang := req.Lang
	if lang == "" {
		lang = h.lang
	}
	if req.Weather != nil {
		return p, *req.Weather, lang, nil
	}
	w, err := h.weather.Current(c.Request().Context(), p.Location)
	if err != nil {
		return entities.FarmerProfile{}, entities.WeatherSnapshot{}, "", err
	}
	return p, w, lang, nil
}

func (h *SignalCtrl) Signal(c echo.Context) error {
	var req signalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, w, lang, err := h.resolve(c, req)
	if err != nil {
		return failResolve(c, err)
	}
	out, rec := h.svc.Evaluate(p, w, lang)
	return c.JSON(http.StatusOK, map[string]any{
		"signal":  out,
		"record":  rec,
		"weather": w,
	})
}

func (h *SignalCtrl) Risks(c echo.Context) error {
	var req signalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, w, lang, err := h.resolve(c, req)
	if err != nil {
		return failResolve(c, err)
	}
	risks := h.svc.Risks(p, w, lang)
	return c.JSON(http.StatusOK, map[string]any{"risks": risks, "weather": w})
}

func (h *SignalCtrl) StageProgress(c echo.Context) error {
	crop, ok := entities.ParseCropType(c.QueryParam("crop"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown crop"})
	}
	sowing, err := time.Parse("2006-01-02", c.QueryParam("sowing_date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad sowing_date"})
	}
	prog, err := advisory.ComputeStageProgress(sowing, crop)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, prog)
}

func failResolve(c echo.Context, err error) error {
	if err == profile.ErrNotSet {
		return c.JSON(http.StatusPreconditionFailed, map[string]string{"error": "profile not set"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
