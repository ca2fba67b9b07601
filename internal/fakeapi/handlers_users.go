package fakeapi

import (
	"net/http"

	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listUsers(c *gin.Context) {
	page, limit := pageQuery(c)
	items, p := h.data.ListUsers(UserFilter{
		Q:      c.Query("q"),
		Skills: listQuery(c, "skills"),
		Page:   page,
		Limit:  limit,
	})
	if items == nil {
		items = []models.User{}
	}
	ok(c, http.StatusOK, models.UserPage{Users: items, Pagination: &p})
}

func (h *Handler) getUser(c *gin.Context) {
	u, err := h.data.UserByID(c.Param("id"))
	if err != nil {
		failErr(c, err, "User")
		return
	}
	ok(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) getUserByUsername(c *gin.Context) {
	u, err := h.data.UserByUsername(c.Param("username"))
	if err != nil {
		failErr(c, err, "User")
		return
	}
	ok(c, http.StatusOK, gin.H{"user": u})
}
