package handler

import (
	"net/http"

	"minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	svc        *service.SubmissionService
	moderation *service.ModerationService
}

type SubmitReq struct {
	Excerpt  string `json:"excerpt" binding:"required"`
	Citation string `json:"citation" binding:"required"`
}

type ConfirmReq struct {
	ID      string `json:"id" binding:"required,uuid"`
	Comment string `json:"comment"`
}

type RejectReq struct {
	ID     string `json:"id" binding:"required,uuid"`
	Reason string `json:"reason"`
}

func NewSubmissionHandler(svc *service.SubmissionService, moderation *service.ModerationService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, moderation: moderation}
}

// Submit creates a pending post for the authenticated user. The acting
// identity is always the token subject; users submit as themselves.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	section, ok := bindSection(c)
	if !ok {
		return
	}

	var req SubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	userID, _ := actingUser(c)
	sub, err := h.svc.Submit(section, userID, req.Excerpt, req.Citation)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": sub.ID})
}

// Confirm publishes a pending post. Admin only.
func (h *SubmissionHandler) Confirm(c *gin.Context) {
	section, ok := bindSection(c)
	if !ok {
		return
	}

	var req ConfirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	notif, err := h.moderation.Confirm(c.Request.Context(), section, req.ID, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}

	view, err := notif.View()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Reject discards a pending post. Admin only.
func (h *SubmissionHandler) Reject(c *gin.Context) {
	section, ok := bindSection(c)
	if !ok {
		return
	}

	var req RejectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	notif, err := h.moderation.Reject(c.Request.Context(), section, req.ID, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}

	view, err := notif.View()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetOrList serves GET /sections/:section/submissions for moderators:
// id= for a single pending post, author= to filter, else the section's
// queue ordered by submission time.
func (h *SubmissionHandler) GetOrList(c *gin.Context) {
	section, ok := bindSection(c)
	if !ok {
		return
	}

	if id := c.Query("id"); id != "" {
		sub, err := h.svc.Get(section, id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, sub)
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

// ListByAuthor serves GET /submissions?author= across all sections.
func (h *SubmissionHandler) ListByAuthor(c *gin.Context) {
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
