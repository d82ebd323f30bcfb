package handler

import (
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HadithHandlerParams holds dependencies for HadithHandler, injected by Fx.
type HadithHandlerParams struct {
	fx.In

	HadithUC usecase.HadithUsecase
	Logger   *slog.Logger
}

// HadithHandler holds dependencies for hadith browsing handlers.
type HadithHandler struct {
	hadithUC usecase.HadithUsecase
	logger   *slog.Logger
}

// NewHadithHandler is the constructor for HadithHandler.
func NewHadithHandler(params HadithHandlerParams) *HadithHandler {
	return &HadithHandler{
		hadithUC: params.HadithUC,
		logger:   params.Logger,
	}
}

// ListBooks returns the available hadith collections.
func (h *HadithHandler) ListBooks(c echo.Context) error {
	books, err := h.hadithUC.ListBooks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, books)
}

// GetBookPage returns one page of a collection.
func (h *HadithHandler) GetBookPage(c echo.Context) error {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	pageSize, err := intQuery(c, "page_size", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	result, err := h.hadithUC.GetBookPage(c.Request().Context(), c.Param("book"), page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetHadith returns one narration from a collection by number.
func (h *HadithHandler) GetHadith(c echo.Context) error {
	number, err := intParam(c, "number")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	hadith, err := h.hadithUC.GetHadith(c.Request().Context(), c.Param("book"), number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hadith)
}
