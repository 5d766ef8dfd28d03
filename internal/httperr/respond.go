package httperr

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// genericMessage is returned for anything outside the typed taxonomy so
// internal detail never reaches the client.
const genericMessage = "Sorry. An unexpected error has occurred. Try again later"

// ErrorResponse is the JSON error body for every failed request.
type ErrorResponse struct {
	Status       int       `json:"status"`
	ErrorMessage string    `json:"errorMessage"`
	Path         string    `json:"path"`
	Timestamp    time.Time `json:"timestamp"`
}

// Respond translates err into its HTTP status and structured error body.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		log.Printf("unexpected error on %s: %v", c.Request.URL.Path, err)
		apiErr = &Error{Status: http.StatusInternalServerError, Message: genericMessage}
	}

	c.JSON(apiErr.Status, ErrorResponse{
		Status:       apiErr.Status,
		ErrorMessage: apiErr.Message,
		Path:         c.Request.URL.Path,
		Timestamp:    time.Now().UTC(),
	})
}
