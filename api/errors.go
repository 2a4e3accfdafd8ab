package api

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	apimodels "github.com/deffiedeff2/event-app/api/models"
	"github.com/deffiedeff2/event-app/screens"
)

// respondError maps the screens failure taxonomy onto HTTP statuses.
// Validation messages pass through verbatim so the UI can show them inline;
// storage failures get a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case screens.IsValidation(err):
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: err.Error()})
	case errors.Is(err, screens.ErrNotFound):
		c.JSON(http.StatusNotFound, apimodels.ErrorResponse{Error: "Not found."})
	case errors.Is(err, screens.ErrUnauthorized):
		c.JSON(http.StatusForbidden, apimodels.ErrorResponse{Error: "Unauthorized to edit this event"})
	case errors.Is(err, screens.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, apimodels.ErrorResponse{Error: "You must be logged in."})
	case errors.Is(err, screens.ErrDuplicateRSVP):
		c.JSON(http.StatusConflict, apimodels.ErrorResponse{Error: "You have already RSVP'd to this event."})
	default:
		log.Error("request failed", "request_id", c.GetString("request_id"), "error", err)
		c.JSON(http.StatusInternalServerError, apimodels.ErrorResponse{Error: "Something went wrong. Please try again."})
	}
}
