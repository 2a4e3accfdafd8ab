package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apimodels "github.com/deffiedeff2/event-app/api/models"
	"github.com/deffiedeff2/event-app/router"
	"github.com/deffiedeff2/event-app/screens"
)

// handleState returns the session's routing state. When a browser comes back
// with a live session but a fresh state, the session-restore transition runs
// first.
func (s *Server) handleState(c *gin.Context) {
	sess := currentSession(c)
	state := sess.State()

	if username, ok := sess.Get(); ok && state.LoggedInUser == "" {
		user, err := s.auth.Lookup(c.Request.Context(), username)
		if err != nil {
			if !errors.Is(err, screens.ErrNotFound) {
				respondError(c, err)
				return
			}
			// session points at a vanished user record, drop it
			sess.Clear()
		} else {
			state = router.Reduce(state, router.SessionRestored{
				Username: user.Username,
				HasPhone: user.HasPhone,
			})
			sess.SetState(state)
		}
		if err := sess.Save(); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, apimodels.StateResponse{State: state})
}

// handleNavigate applies one routing event and returns the new state.
// Illegal transitions are no-ops, not errors: the state comes back unchanged.
func (s *Server) handleNavigate(c *gin.Context) {
	var req apimodels.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid request body."})
		return
	}

	ev, err := s.navigationEvent(c, req)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := currentSession(c)
	state := router.Reduce(sess.State(), ev)
	sess.SetState(state)
	if err := sess.Save(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apimodels.StateResponse{State: state})
}

func (s *Server) navigationEvent(c *gin.Context, req apimodels.NavigateRequest) (router.Event, error) {
	switch req.Target {
	case "auth":
		return router.LoginRequested{}, nil
	case "back":
		return router.BackFromViewEvent{}, nil
	case "viewEvent":
		return router.ViewEventRequested{EventID: req.EventID}, nil
	case "editEvent":
		return router.EditEventRequested{}, nil
	case "publicProfile":
		return router.ViewProfileRequested{Username: req.Username}, nil
	case "createEvent":
		hasPhone := false
		if username, ok := currentSession(c).Get(); ok {
			user, err := s.auth.Lookup(c.Request.Context(), username)
			if err != nil && !errors.Is(err, screens.ErrNotFound) {
				return nil, err
			}
			hasPhone = err == nil && user.HasPhone
		}
		return router.CreateEventRequested{HasPhone: hasPhone}, nil
	default:
		return router.NavigateRequested{Target: router.View(req.Target)}, nil
	}
}

func (s *Server) handleSearch(c *gin.Context) {
	var req apimodels.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid request body."})
		return
	}

	sess := currentSession(c)
	state := router.Reduce(sess.State(), router.SearchChanged{Term: req.Term})
	sess.SetState(state)
	if err := sess.Save(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apimodels.StateResponse{State: state})
}

func (s *Server) handlePhone(c *gin.Context) {
	var req apimodels.PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid request body."})
		return
	}

	if err := s.phone.Add(c.Request.Context(), sessionUser(c), req.Phone); err != nil {
		respondError(c, err)
		return
	}

	sess := currentSession(c)
	state := router.Reduce(sess.State(), router.PhoneAdded{})
	sess.SetState(state)
	if err := sess.Save(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apimodels.StateResponse{State: state})
}
