package handler

import (
	"net/http"

	"minbar/internal/model"
	"minbar/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

type MarkReadReq struct {
	ID   string `json:"id" binding:"required,uuid"`
	Read *bool  `json:"read" binding:"required"`
}

type NotificationDeletionReq struct {
	ID string `json:"id" binding:"required,uuid"`
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List returns the caller's own mailbox; which= selects read, unread
// (default) or all.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, _ := actingUser(c)
	which := model.ParseNotificationFilter(c.Query("which"))
	p := parsePagination(c)

	views, err := h.svc.ListForUser(userID, which, p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": views, "page": p.Page, "per_page": p.PerPage})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _ := actingUser(c)

	count, err := h.svc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead flips the read flag on the caller's own notification.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req MarkReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	userID, _ := actingUser(c)
	if err := h.svc.MarkRead(c.Request.Context(), userID, req.ID, *req.Read); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Delete removes a notification: recipients their own, admins any.
func (h *NotificationHandler) Delete(c *gin.Context) {
	var req NotificationDeletionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	userID, isAdmin := actingUser(c)
	deleted, err := h.svc.Delete(c.Request.Context(), userID, isAdmin, req.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
