package testresults

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/course-service/internal/middleware"
	tokenPkg "terminal-terrace/course-service/internal/token"
)

func RegisterRoutes(r *gin.RouterGroup, issuer *tokenPkg.Issuer) {
	h := &TestResultHandler{
		service: NewTestResultService(),
	}

	// 学生本人或管理员查看学生成绩
	r.GET("/users/:userId/test-results",
		middleware.APIAuth(issuer), middleware.RequireSelfOrAdmin("userId"), h.listByStudent)

	// 成绩管理需要课程教师或管理员
	manage := r.Group("/courses/:courseId/tests/:testId/results",
		middleware.APIAuth(issuer), middleware.RequireTeacherOrAdmin("courseId"))
	{
		manage.GET("", h.listByTest)
		manage.POST("", h.create)
		manage.PUT("/:resultId", h.update)
		manage.DELETE("/:resultId", h.remove)
	}
}
