package fakeapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/devshowcase/internal/fakeapi/auth"
	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) issue(c *gin.Context, status int, u models.User) {
	token, err := auth.GenerateToken(u.ID, h.secret, h.ttl)
	if err != nil {
		h.logger.Error(c.Request.Context(), "sign token", "error", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	ok(c, status, models.AuthResult{Token: token, User: u})
}

func (h *Handler) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := models.Validate(req); err != nil {
		failErr(c, err, "")
		return
	}

	u, err := h.data.CreateUser(req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		failErr(c, err, "User")
		return
	}
	h.issue(c, http.StatusCreated, u)
}

func (h *Handler) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failErr(c, err, "")
		return
	}

	u, err := h.data.Authenticate(req.Email, req.Password)
	if err != nil {
		failErr(c, err, "User")
		return
	}
	h.issue(c, http.StatusOK, u)
}

func (h *Handler) profile(c *gin.Context) {
	u, err := h.data.UserByID(callerID(c))
	if err != nil {
		failErr(c, err, "User")
		return
	}
	ok(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failErr(c, err, "")
		return
	}

	u, err := h.data.UpdateUser(callerID(c), func(u *models.User) {
		if req.FullName != nil {
			u.FullName = strings.TrimSpace(*req.FullName)
		}
		if req.Bio != nil {
			u.Bio = *req.Bio
		}
		if req.Location != nil {
			u.Location = *req.Location
		}
		if req.Website != nil {
			u.Website = *req.Website
		}
		if req.Skills != nil {
			u.Skills = append([]string(nil), req.Skills...)
		}
	})
	if err != nil {
		failErr(c, err, "User")
		return
	}
	ok(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) updateAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	link, err := h.saveUpload(c, fh)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.data.UpdateUser(callerID(c), func(u *models.User) { u.Avatar = link })
	if err != nil {
		failErr(c, err, "User")
		return
	}
	ok(c, http.StatusOK, gin.H{"user": u})
}
