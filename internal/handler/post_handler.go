package handler

import (
	"net/http"

	"minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type PostDeletionReq struct {
	ID string `json:"id" binding:"required,uuid"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// GetOrList serves GET /sections/:section. With id= it returns the one
// published post; otherwise a paginated listing, optionally filtered
// by author.
func (h *PostHandler) GetOrList(c *gin.Context) {
	section, ok := bindSection(c)
	if !ok {
		return
	}

	if id := c.Query("id"); id != "" {
		post, err := h.svc.Get(section, id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
		return
	}

	p := parsePagination(c)

	if author := c.Query("author"); author != "" {
		list, err := h.svc.ListByAuthorInSection(section, author, p)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"list": list, "page": p.Page, "per_page": p.PerPage})
		return
	}

	list, err := h.svc.ListBySection(section, p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "page": p.Page, "per_page": p.PerPage})
}

// ListByAuthor serves GET /posts?author=, section-independent.
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	author := c.Query("author")
	if author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "author required"})
		return
	}

	p := parsePagination(c)
	list, err := h.svc.ListByAuthor(author, p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "page": p.Page, "per_page": p.PerPage})
}

// Delete removes a published post. Admin only; unrelated to the
// moderation transition.
func (h *PostHandler) Delete(c *gin.Context) {
	section, ok := bindSection(c)
	if !ok {
		return
	}

	var req PostDeletionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Delete(section, req.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}
