package authenticate

import (
	"github.com/gin-gonic/gin"

	tokenPkg "terminal-terrace/course-service/internal/token"
)

func RegisterRoutes(r *gin.RouterGroup, issuer *tokenPkg.Issuer) {
	h := &AuthenticateHandler{
		service: NewAuthenticateService(issuer),
	}
	r.POST("/authenticate", h.handle)
}
