package authenticate

import (
	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
)

type AuthenticateHandler struct {
	service *AuthenticateService
}

// handle 验证码换取 API 令牌
// @Summary 验证码换取 API 令牌
// @Description 校验邮箱验证码，成功时在 Authorization 响应头返回签名的 API 令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body AuthenticateRequest true "换取请求"
// @Success 200 {object} dto.Response "换取成功，令牌在 Authorization 响应头"
// @Failure 400 {object} dto.Response "请求参数错误"
// @Failure 401 {object} dto.Response "验证码无效、过期或邮箱不匹配"
// @Failure 500 {object} dto.Response "服务器内部错误"
// @Router /authenticate [post]
func (h *AuthenticateHandler) handle(c *gin.Context) {
	var req AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	bearer, bizErr := h.service.Authenticate(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.Header("Authorization", bearer)
	dto.SuccessResponse(c, nil)
}
