package enrollments

import (
	"strconv"

	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	service *EnrollmentService
}

func parseParamInt(c *gin.Context, name string, label string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage(label+"必须是整数"),
		))
		return 0, false
	}
	return value, true
}

// list 用户选课列表
// @Summary 用户选课列表
// @Tags 选课
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} dto.Response "选课列表"
// @Failure 403 {object} dto.Response "无权查看"
// @Router /users/{userId}/courses [get]
func (h *EnrollmentHandler) list(c *gin.Context) {
	userID, ok := parseParamInt(c, "userId", "用户ID")
	if !ok {
		return
	}

	result, bizErr := h.service.List(userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// enroll 加入课程
// @Summary 加入课程
// @Tags 选课
// @Accept json
// @Produce json
// @Param userId path int true "用户ID"
// @Param request body EnrollRequest true "选课请求"
// @Success 201 {object} dto.Response "选课成功"
// @Failure 403 {object} dto.Response "无权操作"
// @Failure 404 {object} dto.Response "课程不存在"
// @Router /users/{userId}/courses [post]
func (h *EnrollmentHandler) enroll(c *gin.Context) {
	userID, ok := parseParamInt(c, "userId", "用户ID")
	if !ok {
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	if bizErr := h.service.Enroll(userID, req); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.CreatedResponse(c, nil)
}

// withdraw 退出课程
// @Summary 退出课程
// @Tags 选课
// @Produce json
// @Param userId path int true "用户ID"
// @Param courseId path int true "课程ID"
// @Success 200 {object} dto.Response "退课成功"
// @Failure 403 {object} dto.Response "无权操作"
// @Failure 404 {object} dto.Response "选课记录不存在"
// @Router /users/{userId}/courses/{courseId} [delete]
func (h *EnrollmentHandler) withdraw(c *gin.Context) {
	userID, ok := parseParamInt(c, "userId", "用户ID")
	if !ok {
		return
	}
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}

	if bizErr := h.service.Withdraw(userID, courseID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, nil)
}
