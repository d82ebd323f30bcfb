package handler

import (
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuranHandlerParams holds dependencies for QuranHandler, injected by Fx.
type QuranHandlerParams struct {
	fx.In

	QuranUC usecase.QuranUsecase
	Logger  *slog.Logger
}

// QuranHandler holds dependencies for Quran reading handlers.
type QuranHandler struct {
	quranUC usecase.QuranUsecase
	logger  *slog.Logger
}

// NewQuranHandler is the constructor for QuranHandler.
func NewQuranHandler(params QuranHandlerParams) *QuranHandler {
	return &QuranHandler{
		quranUC: params.QuranUC,
		logger:  params.Logger,
	}
}

// AddBookmarkRequest represents the request body for bookmarking an ayah.
type AddBookmarkRequest struct {
	Surah int    `json:"surah" validate:"required,min=1,max=114"`
	Ayah  int    `json:"ayah" validate:"required,min=1"`
	Label string `json:"label"`
}

// SaveProgressRequest represents the request body for a reading position.
type SaveProgressRequest struct {
	Surah int `json:"surah" validate:"required,min=1,max=114"`
	Ayah  int `json:"ayah" validate:"required,min=1"`
}

// ListSurahs returns metadata for all chapters.
func (h *QuranHandler) ListSurahs(c echo.Context) error {
	surahs, err := h.quranUC.ListSurahs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, surahs)
}

// GetSurah returns one chapter with Arabic text and translation paired
// verse by verse. The edition query selects the translation.
func (h *QuranHandler) GetSurah(c echo.Context) error {
	number, err := intParam(c, "number")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	surah, err := h.quranUC.GetSurah(c.Request().Context(), number, c.QueryParam("edition"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, surah)
}

// GetAyah returns a single verse with its translation and share link.
func (h *QuranHandler) GetAyah(c echo.Context) error {
	number, err := intParam(c, "number")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	ayah, err := intParam(c, "ayah")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	pair, err := h.quranUC.GetAyah(c.Request().Context(), number, ayah, c.QueryParam("edition"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pair)
}

// Search runs a full-text search over the translation edition. The surah
// query narrows the search to one chapter; 0 searches everything.
func (h *QuranHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "q is required")
	}

	surah, err := intQuery(c, "surah", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	matches, err := h.quranUC.Search(c.Request().Context(), query, surah)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches)
}

// AddBookmark bookmarks an ayah for the authenticated user.
func (h *QuranHandler) AddBookmark(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bookmark, err := h.quranUC.AddBookmark(c.Request().Context(), usecase.AddBookmarkInput{
		UserID: userID,
		Surah:  req.Surah,
		Ayah:   req.Ayah,
		Label:  req.Label,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bookmark)
}

// ListBookmarks returns the authenticated user's bookmarks.
func (h *QuranHandler) ListBookmarks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarks, err := h.quranUC.ListBookmarks(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookmarks)
}

// DeleteBookmark removes one of the authenticated user's bookmarks.
func (h *QuranHandler) DeleteBookmark(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bookmark ID")
	}

	if err := h.quranUC.DeleteBookmark(c.Request().Context(), userID, bookmarkID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Bookmark deleted"})
}

// GetProgress returns the authenticated user's last reading position.
func (h *QuranHandler) GetProgress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	progress, err := h.quranUC.GetProgress(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// SaveProgress records the authenticated user's reading position.
func (h *QuranHandler) SaveProgress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveProgressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid progress input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	progress, err := h.quranUC.SaveProgress(c.Request().Context(), usecase.SaveProgressInput{
		UserID: userID,
		Surah:  req.Surah,
		Ayah:   req.Ayah,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}
