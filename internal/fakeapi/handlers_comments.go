package fakeapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listComments(c *gin.Context) {
	page, limit := pageQuery(c)
	items, p, err := h.data.ListComments(c.Param("projectId"), page, limit)
	if err != nil {
		failErr(c, err, "Project")
		return
	}
	if items == nil {
		items = []models.Comment{}
	}
	ok(c, http.StatusOK, models.CommentPage{Comments: items, Pagination: &p})
}

func (h *Handler) createComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failErr(c, err, "")
		return
	}

	cm, err := h.data.CreateComment(req.ProjectID, callerID(c), strings.TrimSpace(req.Content))
	if err != nil {
		failErr(c, err, "Project")
		return
	}
	ok(c, http.StatusCreated, gin.H{"comment": cm})
}

func (h *Handler) updateComment(c *gin.Context) {
	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.Validate(req); err != nil {
		failErr(c, err, "")
		return
	}

	cm, err := h.data.UpdateComment(c.Param("id"), callerID(c), strings.TrimSpace(req.Content))
	if err != nil {
		failErr(c, err, "Comment")
		return
	}
	ok(c, http.StatusOK, gin.H{"comment": cm})
}

func (h *Handler) deleteComment(c *gin.Context) {
	if err := h.data.DeleteComment(c.Param("id"), callerID(c)); err != nil {
		failErr(c, err, "Comment")
		return
	}
	okMessage(c, "Comment deleted successfully")
}
