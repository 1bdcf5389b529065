package handler

import (
	"net/http"

	"minbar/internal/model"

	"github.com/gin-gonic/gin"
)

type SectionHandler struct{}

func NewSectionHandler() *SectionHandler { return &SectionHandler{} }

func (h *SectionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": model.Sections()})
}
