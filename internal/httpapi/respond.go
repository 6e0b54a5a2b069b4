package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"joblist/api-service/internal/domain"
)

// respondError maps a repository error to its HTTP status: 400 for
// validation failures, 404 for missing keys, 500 for everything else.
// Unclassified errors are logged with the request id and hidden behind a
// generic message.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
		return
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}

	slog.Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"requestId", c.GetString(requestIDKey),
		"err", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
