package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"minbar/internal/middleware"
	"minbar/internal/model"
	"minbar/internal/pkg"
	"minbar/internal/service"

	"github.com/gin-gonic/gin"
)

// bindSection resolves the :section path param; unknown sections are a
// 404, the target simply does not exist.
func bindSection(c *gin.Context) (model.Section, bool) {
	section, err := model.ParseSection(c.Param("section"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "unknown section"})
		return "", false
	}
	return section, true
}

func parsePagination(c *gin.Context) pkg.Pagination {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return pkg.NewPagination(page, perPage)
}

func actingUser(c *gin.Context) (id string, isAdmin bool) {
	idAny, _ := c.Get(middleware.ContextUserIDKey)
	id, _ = idAny.(string)
	adminAny, _ := c.Get(middleware.ContextIsAdminKey)
	isAdmin, _ = adminAny.(bool)
	return id, isAdmin
}

// fail maps the service error kinds onto wire status codes. The
// services never decide codes themselves.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid credentials"})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}
