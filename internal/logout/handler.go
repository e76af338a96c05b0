package logout

import (
	"terminal-terrace/course-service/internal/database"
	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/internal/middleware"
	tokenModel "terminal-terrace/course-service/internal/model/token"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
)

type LogoutHandler struct{}

// Logout 退出登录
// @Summary 退出登录
// @Description 使当前请求携带的 API 令牌失效，只作用于该令牌本身
// @Tags 认证
// @Produce json
// @Success 200 {object} dto.Response "退出成功"
// @Failure 401 {object} dto.Response "未认证"
// @Router /logout [post]
func (h *LogoutHandler) Logout(c *gin.Context) {
	authCtx, ok := middleware.GetAuthContext(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未认证的请求"),
		))
		return
	}

	err := database.PostgresDB.Model(&tokenModel.Token{}).
		Where("id = ?", authCtx.TokenID).
		Update("valid", false).Error
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("注销令牌失败"),
			response.WithError(err),
		))
		return
	}

	dto.SuccessResponse(c, nil)
}
