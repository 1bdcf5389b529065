package router

import (
	"minbar/internal/handler"
	"minbar/internal/middleware"
	"minbar/internal/repository/redis"
	"minbar/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InitRouter wires handlers over the shared DB handle. cache may be
// nil when Redis is not configured.
func InitRouter(db *gorm.DB, cache *redis.NotificationCacheRepository) *gin.Engine {
	r := gin.Default()

	user := handler.NewUserHandler(service.NewUserService(db))
	section := handler.NewSectionHandler()
	post := handler.NewPostHandler(service.NewPostService(db))
	submission := handler.NewSubmissionHandler(
		service.NewSubmissionService(db),
		service.NewModerationService(db, cache),
	)
	notification := handler.NewNotificationHandler(service.NewNotificationService(db, cache))

	r.POST("/sign-up", user.SignUp)
	r.POST("/sign-in", user.SignIn)

	r.GET("/sections", section.List)

	// Published posts are public reads.
	r.GET("/sections/:section", post.GetOrList)
	r.GET("/posts", post.ListByAuthor)

	userGroup := r.Group("/")
	userGroup.Use(middleware.Auth())
	{
		userGroup.POST("/sections/:section/submit", submission.Submit)

		userGroup.GET("/notifications", notification.List)
		userGroup.GET("/notifications/unread-count", notification.UnreadCount)
		userGroup.PATCH("/notifications", notification.MarkRead)
		userGroup.DELETE("/notifications", notification.Delete)
	}

	adminGroup := r.Group("/")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.POST("/sections/:section/confirm", submission.Confirm)
		adminGroup.DELETE("/sections/:section/reject", submission.Reject)
		adminGroup.GET("/sections/:section/submissions", submission.GetOrList)
		adminGroup.GET("/submissions", submission.ListByAuthor)
		adminGroup.DELETE("/sections/:section", post.Delete)
	}

	return r
}
