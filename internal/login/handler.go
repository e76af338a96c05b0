package login

import (
	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	service *LoginService
}

// handle 请求登录验证码
// @Summary 请求登录验证码
// @Description 向邮箱发送一次性登录验证码，邮箱不存在时自动注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录请求"
// @Success 200 {object} dto.Response "发送成功"
// @Failure 400 {object} dto.Response "邮箱格式错误"
// @Failure 500 {object} dto.Response "服务器内部错误"
// @Router /login [post]
func (h *LoginHandler) handle(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	if err := h.service.Login(req); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, nil)
}
