package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/lily-salon/internal/infra/apiclient"
	"github.com/BruksfildServices01/lily-salon/internal/middleware"
)

func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login", gin.H{"Username": ""})
}

func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		h.render(c, http.StatusBadRequest, "login", gin.H{
			"Error":    msgInvalidLogin,
			"Username": username,
		})
		return
	}

	resp, err := h.api.Login(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, apiclient.ErrInvalidCredentials) {
			h.log.Warn("login request failed", zap.Error(err))
		}
		h.render(c, http.StatusUnauthorized, "login", gin.H{
			"Error":    msgInvalidLogin,
			"Username": username,
		})
		return
	}

	s, err := h.sessions.Login(c.Request.Context(), *resp)
	if err != nil {
		h.log.Error("store session failed", zap.Error(err))
		h.render(c, http.StatusInternalServerError, "login", gin.H{
			"Error":    msgInvalidLogin,
			"Username": username,
		})
		return
	}

	h.log.Info("user signed in",
		zap.String("username", s.User.Username),
		zap.String("role", string(s.User.Role)),
	)
	h.setCookie(c, s.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Logout(c.Request.Context(), sid); err != nil {
			h.log.Warn("logout failed", zap.Error(err))
		}
	}
	h.clearCookie(c)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}
