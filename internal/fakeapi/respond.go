package fakeapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/devshowcase/internal/common"
	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func okMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": nil, "message": msg})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
}

// failErr maps domain errors to a status. notFound names the missing thing.
func failErr(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		fail(c, http.StatusNotFound, notFound+" not found")
	case errors.Is(err, common.ErrorForbidden):
		fail(c, http.StatusForbidden, "Not authorized")
	case errors.Is(err, common.ErrorAlreadyExists):
		fail(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, common.ErrorInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		fail(c, http.StatusInternalServerError, "Server error")
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func pageQuery(c *gin.Context) (int, int) {
	return intQuery(c, "page", defaultPage), min(intQuery(c, "limit", defaultLimit), maxLimit)
}

// listQuery splits a comma separated parameter, dropping blanks.
func listQuery(c *gin.Context, key string) []string {
	var out []string
	for _, s := range strings.Split(c.Query(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
