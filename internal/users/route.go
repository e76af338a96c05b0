package users

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/course-service/internal/middleware"
	tokenPkg "terminal-terrace/course-service/internal/token"
)

func RegisterRoutes(public *gin.RouterGroup, issuer *tokenPkg.Issuer) {
	h := &UserHandler{
		service: NewUserService(),
	}

	// 创建用户无需认证（与登录自动注册同级的公开入口）
	public.POST("/users", h.create)

	guarded := public.Group("/users", middleware.APIAuth(issuer), middleware.RequireSelfOrAdmin("userId"))
	{
		guarded.GET("/:userId", h.get)
		guarded.PUT("/:userId", h.update)
		guarded.DELETE("/:userId", h.remove)
	}
}
