package route

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"terminal-terrace/course-service/config"
	"terminal-terrace/course-service/internal/authenticate"
	"terminal-terrace/course-service/internal/courses"
	"terminal-terrace/course-service/internal/enrollments"
	"terminal-terrace/course-service/internal/login"
	"terminal-terrace/course-service/internal/logout"
	"terminal-terrace/course-service/internal/middleware"
	"terminal-terrace/course-service/internal/testresults"
	tokenPkg "terminal-terrace/course-service/internal/token"
	"terminal-terrace/course-service/internal/users"
)

func initRoute(r *gin.Engine) {
	// 签名密钥在启动时注入，进程内只读
	issuer := tokenPkg.NewIssuer(config.Conf.JWT.Secret)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"up": true})
	})

	api := r.Group("")
	{
		// 无需认证的入口
		login.RegisterRoutes(api)
		authenticate.RegisterRoutes(api, issuer)

		authGroup := api.Group("", middleware.APIAuth(issuer))
		logout.RegisterRoutes(authGroup)

		// 受保护的业务路由，认证与授权由各自的路由组挂载
		users.RegisterRoutes(api, issuer)
		courses.RegisterRoutes(api, issuer)
		enrollments.RegisterRoutes(api, issuer)
		testresults.RegisterRoutes(api, issuer)
	}
}

func SetupRouter() *gin.Engine {
	if config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// 允许的前端来源
	allowedOrigins := config.Conf.Cors.AllowOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Authorization"},
	}))

	initRoute(r)

	return r
}
