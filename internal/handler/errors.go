package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edukita/studentbook-backend/internal/response"
)

// failInternal logs the underlying error before replying with the
// generic internal-error envelope. The client only ever sees
// INTERNAL_ERROR; the cause goes to the log.
func failInternal(c *gin.Context, log zerolog.Logger, err error, msg string) {
	log.Error().
		Err(err).
		Str("path", c.FullPath()).
		Str("request_id", c.GetString(response.ContextKeyRequestID)).
		Msg(msg)
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
