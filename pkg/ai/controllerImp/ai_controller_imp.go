package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kisan/pkg/ai"
)

type AICtrl struct{ client ai.Client }

func New(client ai.Client) *AICtrl { return &AICtrl{client} }

type chatReq struct {
	Prompt      string `json:"prompt"`
	ImageBase64 string `json:"image_base64"`
}

func (h *AICtrl) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Prompt == "" && req.ImageBase64 == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "prompt or image required"})
	}
	reply, err := h.client.Chat(c.Request().Context(), req.Prompt, req.ImageBase64)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}

type scanReq struct {
	ImageBase64 string `json:"image_base64"`
}

func (h *AICtrl) Scan(c echo.Context) error {
	var req scanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.ImageBase64 == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image required"})
	}
	report, err := h.client.Scan(c.Request().Context(), req.ImageBase64)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}
