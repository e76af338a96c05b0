package logout

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	handler := &LogoutHandler{}

	// 认证中间件由上层路由组挂载
	r.POST("/logout", handler.Logout)
}
