package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storyweave/storyweave-api/internal/api/metrics"
)

// TranslateUseCase is the slice of the translation service the handler needs.
type TranslateUseCase interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type TranslateHandler struct {
	service TranslateUseCase
}

func NewTranslateHandler(service TranslateUseCase) *TranslateHandler {
	return &TranslateHandler{service: service}
}

type translateRequest struct {
	Text   string `json:"text"   validate:"required,min=1,max=10000"`
	Source string `json:"source" validate:"required,min=2,max=8"`
	Target string `json:"target" validate:"required,min=2,max=8"`
}

type translateData struct {
	TranslatedText string `json:"translated_text"`
}

// Translate handles POST /v1/translate — forwards text to the external
// translation API.
//
// @Summary      Translate text
// @Tags         translate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      translateRequest  true  "Text and language pair"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      502   {object}  envelope
// @Router       /v1/translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	translated, err := h.service.Translate(c.Request().Context(), req.Text, req.Source, req.Target)
	if err != nil {
		metrics.TranslationsTotal.WithLabelValues("error").Inc()
		return echo.NewHTTPError(http.StatusBadGateway, "translation service unavailable")
	}

	metrics.TranslationsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, OK(translateData{TranslatedText: translated}))
}
