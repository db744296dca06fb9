package handler

import (
	"net/http"

	"dukasync/internal/delivery/api/response"
	"dukasync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DownloadHandlerParams holds dependencies for DownloadHandler, injected by Fx.
type DownloadHandlerParams struct {
	fx.In

	Downloads usecase.DownloadUsecase
}

// DownloadHandler serves the Android app download link
type DownloadHandler struct {
	downloads usecase.DownloadUsecase
}

// NewDownloadHandler is the constructor for DownloadHandler
func NewDownloadHandler(params DownloadHandlerParams) *DownloadHandler {
	return &DownloadHandler{downloads: params.Downloads}
}

// ApkLink returns the resolved APK URL
func (h *DownloadHandler) ApkLink(c echo.Context) error {
	link, err := h.downloads.ApkLink(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, link)
}

// ApkQRCode returns the APK URL as a PNG QR code
func (h *DownloadHandler) ApkQRCode(c echo.Context) error {
	png, err := h.downloads.ApkQRCode(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.Blob(http.StatusOK, "image/png", png)
}
