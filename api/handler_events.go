package api

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apimodels "github.com/deffiedeff2/event-app/api/models"
	"github.com/deffiedeff2/event-app/images"
	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/router"
	"github.com/deffiedeff2/event-app/screens"
)

func (s *Server) handleCreateEvent(c *gin.Context) {
	username := sessionUser(c)

	user, err := s.auth.Lookup(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	if !user.HasPhone {
		c.JSON(http.StatusForbidden, apimodels.ErrorResponse{
			Error: "Please add a phone number to your profile to create events.",
		})
		return
	}

	input, err := eventInputFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	event, err := s.events.Create(c.Request.Context(), username, input)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := currentSession(c)
	state := router.Reduce(sess.State(), router.EventCreated{EventID: event.ID})
	sess.SetState(state)
	if err := sess.Save(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, apimodels.EventResponse{
		Event: s.annotateEvent(c, event),
		State: state,
	})
}

// handleGetEvent serves a single event. Public access: works logged out.
func (s *Server) handleGetEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid event ID."})
		return
	}

	event, err := s.events.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": s.annotateEvent(c, event)})
}

func (s *Server) handleUpdateEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid event ID."})
		return
	}

	input, err := eventInputFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}
	input.RemoveImage = c.PostForm("removeImage") == "true"

	event, err := s.events.Update(c.Request.Context(), sessionUser(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := currentSession(c)
	state := router.Reduce(sess.State(), router.EventSaved{})
	sess.SetState(state)
	if err := sess.Save(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apimodels.EventResponse{
		Event: s.annotateEvent(c, event),
		State: state,
	})
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid event ID."})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{
			Error: "Deleting an event requires confirmation.",
		})
		return
	}

	if err := s.dashboard.Delete(c.Request.Context(), sessionUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (s *Server) handleRSVP(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid event ID."})
		return
	}

	event, err := s.events.RSVP(c.Request.Context(), sessionUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": s.annotateEvent(c, event)})
}

// handleDashboard lists the session user's own events. The search defaults
// to the router's global term; sort is newest unless overridden.
func (s *Server) handleDashboard(c *gin.Context) {
	sess := currentSession(c)
	search := c.Query("search")
	if search == "" {
		search = sess.State().SearchTerm
	}
	order := screens.SortOrder(c.DefaultQuery("sort", string(screens.SortNewest)))

	list, err := s.dashboard.List(c.Request.Context(), sessionUser(c), search, order)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	items := make([]apimodels.FeedItem, len(list))
	for i, event := range list {
		items[i] = s.annotateEventAt(c, event, now)
	}
	c.JSON(http.StatusOK, gin.H{"events": items})
}

// handleExplore serves the cached public feed; it may be up to one refresh
// interval stale.
func (s *Server) handleExplore(c *gin.Context) {
	feed, err := s.engine.PublicFeed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": apimodels.ToFeedItems(feed, time.Now())})
}

func (s *Server) annotateEvent(c *gin.Context, event models.Event) apimodels.FeedItem {
	return s.annotateEventAt(c, event, time.Now())
}

func (s *Server) annotateEventAt(c *gin.Context, event models.Event, now time.Time) apimodels.FeedItem {
	item, err := s.explore.Annotate(c.Request.Context(), event)
	if err != nil {
		item = screens.FeedItem{Event: event}
	}
	return apimodels.ToFeedItem(item, now)
}

func eventInputFromForm(c *gin.Context) (screens.EventInput, error) {
	input := screens.EventInput{
		Title:       c.PostForm("title"),
		Date:        c.PostForm("date"),
		Description: c.PostForm("description"),
		Background:  models.Background(c.PostForm("background")),
		IsPublic:    c.PostForm("isPublic") == "true",
	}

	file, err := c.FormFile("image")
	if err != nil {
		return input, nil // no upload
	}
	data, err := readUpload(file, images.MaxEventImageBytes)
	if err != nil {
		return input, err
	}
	input.Image = data
	return input, nil
}

// readUpload reads at most maxBytes+1 so oversized files are detected by the
// validator instead of buffering the whole upload.
func readUpload(file *multipart.FileHeader, maxBytes int) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	return io.ReadAll(io.LimitReader(f, int64(maxBytes)+1))
}
