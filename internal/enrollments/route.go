package enrollments

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/course-service/internal/middleware"
	tokenPkg "terminal-terrace/course-service/internal/token"
)

func RegisterRoutes(r *gin.RouterGroup, issuer *tokenPkg.Issuer) {
	h := &EnrollmentHandler{
		service: NewEnrollmentService(),
	}

	group := r.Group("/users/:userId/courses", middleware.APIAuth(issuer), middleware.RequireSelfOrAdmin("userId"))
	{
		group.GET("", h.list)
		group.POST("", h.enroll)
		group.DELETE("/:courseId", h.withdraw)
	}
}
