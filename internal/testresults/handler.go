package testresults

import (
	"strconv"

	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/internal/middleware"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
)

type TestResultHandler struct {
	service *TestResultService
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

// listByStudent 学生成绩列表
// @Summary 学生成绩列表
// @Tags 成绩
// @Produce json
// @Param userId path int true "学生用户ID"
// @Success 200 {object} dto.Response "成绩列表"
// @Failure 403 {object} dto.Response "无权查看"
// @Router /users/{userId}/test-results [get]
func (h *TestResultHandler) listByStudent(c *gin.Context) {
	userID, ok := parseParamInt(c, "userId", "用户ID")
	if !ok {
		return
	}

	result, bizErr := h.service.ListByStudent(userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// listByTest 考试成绩列表
// @Summary 一场考试的成绩列表
// @Tags 成绩
// @Produce json
// @Param courseId path int true "课程ID"
// @Param testId path int true "考试ID"
// @Success 200 {object} dto.Response "成绩列表"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId}/tests/{testId}/results [get]
func (h *TestResultHandler) listByTest(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}
	testID, ok := parseParamInt(c, "testId", "考试ID")
	if !ok {
		return
	}

	result, bizErr := h.service.ListByTest(courseID, testID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// create 录入成绩
// @Summary 录入成绩
// @Tags 成绩
// @Accept json
// @Produce json
// @Param courseId path int true "课程ID"
// @Param testId path int true "考试ID"
// @Param request body CreateTestResultRequest true "成绩"
// @Success 201 {object} dto.Response "录入成功"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId}/tests/{testId}/results [post]
func (h *TestResultHandler) create(c *gin.Context) {
	authCtx, ok := middleware.GetAuthContext(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未认证的请求"),
		))
		return
	}

	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}
	testID, ok := parseParamInt(c, "testId", "考试ID")
	if !ok {
		return
	}

	var req CreateTestResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	created, bizErr := h.service.Create(courseID, testID, authCtx.UserID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.CreatedResponse(c, created)
}

// update 修改成绩
// @Summary 修改成绩
// @Tags 成绩
// @Accept json
// @Produce json
// @Param courseId path int true "课程ID"
// @Param testId path int true "考试ID"
// @Param resultId path int true "成绩ID"
// @Param request body UpdateTestResultRequest true "成绩"
// @Success 200 {object} dto.Response "修改后的成绩"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId}/tests/{testId}/results/{resultId} [put]
func (h *TestResultHandler) update(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}
	testID, ok := parseParamInt(c, "testId", "考试ID")
	if !ok {
		return
	}
	resultID, ok := parseParamInt(c, "resultId", "成绩ID")
	if !ok {
		return
	}

	var req UpdateTestResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	updated, bizErr := h.service.Update(courseID, testID, resultID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, updated)
}

// remove 删除成绩
// @Summary 删除成绩
// @Tags 成绩
// @Produce json
// @Param courseId path int true "课程ID"
// @Param testId path int true "考试ID"
// @Param resultId path int true "成绩ID"
// @Success 200 {object} dto.Response "删除成功"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId}/tests/{testId}/results/{resultId} [delete]
func (h *TestResultHandler) remove(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}
	testID, ok := parseParamInt(c, "testId", "考试ID")
	if !ok {
		return
	}
	resultID, ok := parseParamInt(c, "resultId", "成绩ID")
	if !ok {
		return
	}

	if bizErr := h.service.Delete(courseID, testID, resultID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, nil)
}
