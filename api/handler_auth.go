package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apimodels "github.com/deffiedeff2/event-app/api/models"
	"github.com/deffiedeff2/event-app/router"
)

func (s *Server) handleSignUp(c *gin.Context) {
	var req apimodels.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid request body."})
		return
	}

	user, err := s.auth.SignUp(c.Request.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := currentSession(c)
	sess.Set(user.Username)
	state := router.Reduce(sess.State(), router.LoginSucceeded{
		Username: user.Username,
		HasPhone: user.HasPhone,
	})
	sess.SetState(state)
	if err := sess.Save(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  apimodels.ToProfile(user),
		"state": state,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req apimodels.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid request body."})
		return
	}

	user, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := currentSession(c)
	sess.Set(user.Username)
	state := router.Reduce(sess.State(), router.LoginSucceeded{
		Username: user.Username,
		HasPhone: user.HasPhone,
	})
	sess.SetState(state)
	if err := sess.Save(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  apimodels.ToProfile(user),
		"state": state,
	})
}

func (s *Server) handleResetPassword(c *gin.Context) {
	var req apimodels.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apimodels.ErrorResponse{Error: "Invalid request body."})
		return
	}

	if err := s.auth.ResetPassword(c.Request.Context(), req.Username, req.NewPassword, req.ConfirmNewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Password reset successful! You can now login with your new password.",
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	sess := currentSession(c)
	state := router.Reduce(sess.State(), router.LoggedOut{})
	sess.Clear()
	sess.SetState(state)
	if err := sess.Save(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apimodels.StateResponse{State: state})
}
