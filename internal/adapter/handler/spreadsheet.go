package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-tracker/errors"
	meetingDTO "github.com/johnquangdev/meeting-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/fetch"
	meetingUsecase "github.com/johnquangdev/meeting-tracker/internal/usecase/meeting"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Spreadsheet handles workbook import/export HTTP requests
type Spreadsheet struct {
	service        *meetingUsecase.Service
	fetcher        *fetch.Fetcher
	logger         *zap.Logger
	maxUploadBytes int64
}

// NewSpreadsheetHandler creates a new spreadsheet handler
func NewSpreadsheetHandler(service *meetingUsecase.Service, fetcher *fetch.Fetcher, maxUploadBytes int64, logger *zap.Logger) *Spreadsheet {
	return &Spreadsheet{
		service:        service,
		fetcher:        fetcher,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// ImportFile handles POST /meetings/import (multipart "file").
// A successful import replaces the whole collection; any failure leaves it
// untouched.
// @Summary      Import meetings from an uploaded workbook
// @Tags         Spreadsheet
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Workbook (.xlsx or .xls)"
// @Success      200  {object}  meeting.ImportResponse
// @Failure      400  {object}  map[string]interface{}  "Invalid upload or unparseable workbook"
// @Router       /meetings/import [post]
func (h *Spreadsheet) ImportFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidUpload("Missing file field"))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		return HandleError(h.logger, c, errors.ErrInvalidUpload("Only .xlsx and .xls files are accepted"))
	}
	if fileHeader.Size > h.maxUploadBytes {
		return HandleError(h.logger, c,
			errors.ErrInvalidUpload(fmt.Sprintf("File exceeds the %d byte limit", h.maxUploadBytes)))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	meetings, err := h.service.Import(c.Request().Context(), data)
	if err != nil {
		return HandleError(h.logger, c, mapServiceError(err, ""))
	}

	if h.logger != nil {
		h.logger.Info("meetings imported from upload",
			zap.String("filename", fileHeader.Filename),
			zap.Int("count", len(meetings)),
		)
	}
	return HandleSuccess(h.logger, c, presenter.ToImportResponse(meetings))
}

// ImportURL handles POST /meetings/import/url with a JSON {"url": ...} body.
func (h *Spreadsheet) ImportURL(c echo.Context) error {
	var req meetingDTO.ImportFromURLRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	data, err := h.fetcher.Fetch(c.Request().Context(), req.URL)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrFetchFailed(req.URL, err))
	}

	meetings, err := h.service.Import(c.Request().Context(), data)
	if err != nil {
		return HandleError(h.logger, c, mapServiceError(err, ""))
	}

	if h.logger != nil {
		h.logger.Info("meetings imported from URL",
			zap.String("url", req.URL),
			zap.Int("count", len(meetings)),
		)
	}
	return HandleSuccess(h.logger, c, presenter.ToImportResponse(meetings))
}

// Export handles GET /meetings/export?filename=. Streams the workbook as an
// attachment; the collection is only read, never mutated.
func (h *Spreadsheet) Export(c echo.Context) error {
	data, filename, err := h.service.Export(c.Request().Context(), c.QueryParam("filename"))
	if err != nil {
		return HandleError(h.logger, c, mapServiceError(err, ""))
	}

	if h.logger != nil {
		h.logger.Info("meetings exported",
			zap.String("filename", filename),
			zap.Int("bytes", len(data)),
		)
	}
	return h.sendWorkbook(c, data, filename)
}

// Template handles GET /meetings/template, serving the fixed sample workbook.
func (h *Spreadsheet) Template(c echo.Context) error {
	data, filename, err := h.service.SampleTemplate()
	if err != nil {
		return HandleError(h.logger, c, mapServiceError(err, ""))
	}
	return h.sendWorkbook(c, data, filename)
}

func (h *Spreadsheet) sendWorkbook(c echo.Context, data []byte, filename string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
