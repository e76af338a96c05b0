package courses

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/course-service/internal/middleware"
	tokenPkg "terminal-terrace/course-service/internal/token"
)

func RegisterRoutes(r *gin.RouterGroup, issuer *tokenPkg.Issuer) {
	h := &CourseHandler{
		service: NewCourseService(),
	}

	group := r.Group("/courses", middleware.APIAuth(issuer))
	{
		group.POST("", h.create)
		group.GET("", h.list)
		group.GET("/:courseId", h.get)

		// 课程及考试的写操作需要课程教师或管理员
		manage := group.Group("", middleware.RequireTeacherOrAdmin("courseId"))
		{
			manage.PUT("/:courseId", h.update)
			manage.DELETE("/:courseId", h.remove)
			manage.POST("/:courseId/tests", h.createTest)
			manage.PUT("/:courseId/tests/:testId", h.updateTest)
			manage.DELETE("/:courseId/tests/:testId", h.removeTest)
		}

		group.GET("/:courseId/tests", h.listTests)
	}
}
