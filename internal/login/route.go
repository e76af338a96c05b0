package login

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/course-service/config"
	"terminal-terrace/course-service/email"
)

func RegisterRoutes(r *gin.RouterGroup) {
	mailer := email.NewClient(&config.Conf.Smtp)

	h := &LoginHandler{
		service: NewLoginService(mailer),
	}
	r.POST("/login", h.handle)
}
