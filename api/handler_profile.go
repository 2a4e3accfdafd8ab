package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apimodels "github.com/deffiedeff2/event-app/api/models"
	"github.com/deffiedeff2/event-app/images"
	"github.com/deffiedeff2/event-app/screens"
)

func (s *Server) handleGetProfile(c *gin.Context) {
	user, err := s.profile.Get(c.Request.Context(), sessionUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": apimodels.ToProfile(user)})
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	input := screens.ProfileInput{
		DisplayName: c.PostForm("displayName"),
		Bio:         c.PostForm("bio"),
		RemoveImage: c.PostForm("removeImage") == "true",
	}
	if file, err := c.FormFile("image"); err == nil {
		data, err := readUpload(file, images.MaxProfileImageBytes)
		if err != nil {
			respondError(c, err)
			return
		}
		input.Image = data
	}

	user, err := s.profile.Update(c.Request.Context(), sessionUser(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":    apimodels.ToProfile(user),
		"message": "Profile updated successfully!",
	})
}

// handlePublicProfile serves another user's public profile with their public
// events only. Works logged out.
func (s *Server) handlePublicProfile(c *gin.Context) {
	profile, events, err := s.profile.Public(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"events":  apimodels.ToFeedItems(events, time.Now()),
	})
}
