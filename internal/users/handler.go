package users

import (
	"strconv"

	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *UserService
}

func parseUserID(c *gin.Context) (int, bool) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户ID必须是整数"),
		))
		return 0, false
	}
	return userID, true
}

// create 创建用户
// @Summary 创建用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "用户信息"
// @Success 201 {object} dto.Response "创建成功"
// @Failure 400 {object} dto.Response "请求参数错误"
// @Router /users [post]
func (h *UserHandler) create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	result, bizErr := h.service.Create(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.CreatedResponse(c, result)
}

// get 查询用户
// @Summary 查询用户
// @Tags 用户
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} dto.Response "用户信息"
// @Failure 403 {object} dto.Response "无权查看"
// @Failure 404 {object} dto.Response "用户不存在"
// @Router /users/{userId} [get]
func (h *UserHandler) get(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	fetched, bizErr := h.service.Get(userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, fetched)
}

// update 更新用户
// @Summary 更新用户资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param request body UpdateUserRequest true "更新字段"
// @Success 200 {object} dto.Response "更新后的用户"
// @Failure 403 {object} dto.Response "无权修改"
// @Failure 404 {object} dto.Response "用户不存在"
// @Router /users/{userId} [put]
func (h *UserHandler) update(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	updated, bizErr := h.service.Update(userID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, updated)
}

// remove 删除用户
// @Summary 删除用户
// @Tags 用户
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} dto.Response "删除成功"
// @Failure 403 {object} dto.Response "无权删除"
// @Failure 404 {object} dto.Response "用户不存在"
// @Router /users/{userId} [delete]
func (h *UserHandler) remove(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if bizErr := h.service.Delete(userID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, nil)
}
