package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/acmartinr/liveup/internal/upload"
)

// handleUpload accepts one multipart file under the "file" field and
// answers with the public URL of the stored copy.
func handleUpload(store *upload.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
			return
		}

		src, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
			return
		}
		defer src.Close()

		url, err := store.Save(src, header.Size)
		switch {
		case errors.Is(err, upload.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		case errors.Is(err, upload.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		case err != nil:
			log.Error().Err(err).Str("module", "adapters.http").Msg("store upload")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		default:
			c.JSON(http.StatusCreated, gin.H{"url": url})
		}
	}
}
