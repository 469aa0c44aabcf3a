package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"minit-mesyuarat/internal/logger"
	"minit-mesyuarat/internal/minit"
	"minit-mesyuarat/internal/model"
	"minit-mesyuarat/internal/service"
)

// Uploaded letterheads beyond this are rejected before decoding.
const maxLetterheadBytes = 8 << 20

type MinutesHandler struct {
	svc       *service.MinutesService
	exportDir string
}

func NewMinutesHandler(svc *service.MinutesService, exportDir string) *MinutesHandler {
	return &MinutesHandler{svc: svc, exportDir: exportDir}
}

// Templates handles GET /api/templates.
func (h *MinutesHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Templates())
}

// Generate handles POST /api/minit/pdf. Multipart form: a "payload" JSON field
// with the meeting record plus an optional "letterhead" image file. On success
// the PDF streams back as an attachment; recoverable problems ride along in
// the X-Minit-Warnings header.
func (h *MinutesHandler) Generate(c *gin.Context) {
	payload := c.PostForm("payload")
	if payload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing payload field"})
		return
	}

	var rec minit.Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	if fh, err := c.FormFile("letterhead"); err == nil {
		if fh.Size > maxLetterheadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "letterhead too large"})
			return
		}
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read letterhead"})
			return
		}
		rec.Letterhead, err = io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read letterhead"})
			return
		}
	}

	res, err := h.svc.Generate(c.Request.Context(), &rec)
	if err != nil {
		h.writeGenerateError(c, err)
		return
	}

	logger.Info("minit generated", "file", res.Filename, "warnings", len(res.Warnings))
	if len(res.Warnings) > 0 {
		c.Header("X-Minit-Warnings", strings.Join(res.Warnings, "; "))
	}
	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}

func (h *MinutesHandler) writeGenerateError(c *gin.Context, err error) {
	var verr *minit.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sila lengkapkan borang", "fields": verr.Fields})
		return
	}
	var cerr *minit.ConfigurationError
	if errors.As(err, &cerr) {
		logger.Error("template configuration broken", "err", cerr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": cerr.Error()})
		return
	}
	logger.Error("generate failed", "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "penjanaan PDF gagal, sila cuba lagi"})
}

// Archives handles GET /api/minit.
func (h *MinutesHandler) Archives(c *gin.Context) {
	rows, err := h.svc.Archives(c.Request.Context())
	if err != nil {
		logger.Error("list archives failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot list archive"})
		return
	}
	if rows == nil {
		rows = []model.MinuteArchive{}
	}
	c.JSON(http.StatusOK, rows)
}

// Export handles POST /api/minit/export: builds the XLSX index and hands back
// a one-shot download URL. Undownloaded files are cleaned up after 5 minutes.
func (h *MinutesHandler) Export(c *gin.Context) {
	path, title, err := h.svc.ExportArchive(c.Request.Context())
	if err != nil {
		logger.Error("archive export failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	time.AfterFunc(5*time.Minute, func() { os.Remove(path) })

	c.JSON(http.StatusOK, model.ExportResponse{
		DownloadURL:   "/api/files/" + title,
		DownloadTitle: title,
	})
}

// DownloadFile handles GET /api/files/:name and removes the file once served.
func (h *MinutesHandler) DownloadFile(c *gin.Context) {
	name := filepath.Base(c.Param("name"))
	path := filepath.Join(h.exportDir, name)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	c.File(path)
	defer os.Remove(path)
}
