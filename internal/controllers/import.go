package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zhangben/backend/internal/httputil"
	"github.com/zhangben/backend/internal/importer"
	"github.com/zhangben/backend/internal/models"
)

// ImportResponse reports the outcome of a statement file import.
type ImportResponse struct {
	Message    string `json:"message" example:"import complete"`
	Count      int    `json:"count" example:"23"`      // Transactions created
	TotalFound int    `json:"totalFound" example:"25"` // Candidate rows found in the file
	Source     string `json:"source" example:"CSV"`    // "CSV" or "Excel"
}

// ImportTransactions imports a statement export file uploaded as the
// multipart form field "file".
func ImportTransactions(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		importFiles.WithLabelValues("rejected").Inc()
		httputil.NewError(c, http.StatusBadRequest, importer.ErrNoFile)
		return
	}

	f, err := formFile.Open()
	if err != nil {
		importFiles.WithLabelValues("rejected").Inc()
		httputil.NewError(c, http.StatusBadRequest, importer.ErrNoFile)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		importFiles.WithLabelValues("rejected").Inc()
		httputil.NewError(c, http.StatusBadRequest, importer.ErrNoFile)
		return
	}

	summary, err := importer.Import(models.DB, data, defaultUserID)
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrNoFile), errors.Is(err, importer.ErrWorkbook):
			importFiles.WithLabelValues("rejected").Inc()
			httputil.NewError(c, http.StatusBadRequest, err)
		default:
			importFiles.WithLabelValues("failed").Inc()
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("import failed")
			httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		}
		return
	}

	importFiles.WithLabelValues("imported").Inc()
	importTransactions.Add(float64(summary.Imported))

	c.JSON(http.StatusOK, ImportResponse{
		Message:    "import complete",
		Count:      summary.Imported,
		TotalFound: summary.TotalRows,
		Source:     summary.Source,
	})
}
