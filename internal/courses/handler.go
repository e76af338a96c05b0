package courses

import (
	"strconv"

	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/internal/middleware"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	service *CourseService
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

// create 创建课程
// @Summary 创建课程
// @Description 创建课程，创建者自动成为该课程教师
// @Tags 课程
// @Accept json
// @Produce json
// @Param request body CreateCourseRequest true "课程信息"
// @Success 201 {object} dto.Response "创建成功"
// @Failure 401 {object} dto.Response "未认证"
// @Router /courses [post]
func (h *CourseHandler) create(c *gin.Context) {
	authCtx, ok := middleware.GetAuthContext(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未认证的请求"),
		))
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	created, bizErr := h.service.Create(authCtx.UserID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.CreatedResponse(c, created)
}

// list 课程列表
// @Summary 课程列表
// @Tags 课程
// @Produce json
// @Success 200 {object} dto.Response "课程列表"
// @Router /courses [get]
func (h *CourseHandler) list(c *gin.Context) {
	result, bizErr := h.service.List()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// get 查询课程
// @Summary 查询课程
// @Tags 课程
// @Produce json
// @Param courseId path int true "课程ID"
// @Success 200 {object} dto.Response "课程信息"
// @Failure 404 {object} dto.Response "课程不存在"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) get(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}

	fetched, bizErr := h.service.Get(courseID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, fetched)
}

// update 更新课程
// @Summary 更新课程
// @Tags 课程
// @Accept json
// @Produce json
// @Param courseId path int true "课程ID"
// @Param request body UpdateCourseRequest true "更新字段"
// @Success 200 {object} dto.Response "更新后的课程"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId} [put]
func (h *CourseHandler) update(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	updated, bizErr := h.service.Update(courseID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, updated)
}

// remove 删除课程
// @Summary 删除课程
// @Tags 课程
// @Produce json
// @Param courseId path int true "课程ID"
// @Success 200 {object} dto.Response "删除成功"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) remove(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}

	if bizErr := h.service.Delete(courseID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, nil)
}

// createTest 创建考试
// @Summary 在课程下创建考试
// @Tags 课程
// @Accept json
// @Produce json
// @Param courseId path int true "课程ID"
// @Param request body CreateTestRequest true "考试信息"
// @Success 201 {object} dto.Response "创建成功"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId}/tests [post]
func (h *CourseHandler) createTest(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}

	var req CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	created, bizErr := h.service.CreateTest(courseID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.CreatedResponse(c, created)
}

// listTests 课程考试列表
// @Summary 课程考试列表
// @Tags 课程
// @Produce json
// @Param courseId path int true "课程ID"
// @Success 200 {object} dto.Response "考试列表"
// @Router /courses/{courseId}/tests [get]
func (h *CourseHandler) listTests(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}

	result, bizErr := h.service.ListTests(courseID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

// updateTest 更新考试
// @Summary 更新考试
// @Tags 课程
// @Accept json
// @Produce json
// @Param courseId path int true "课程ID"
// @Param testId path int true "考试ID"
// @Param request body UpdateTestRequest true "更新字段"
// @Success 200 {object} dto.Response "更新后的考试"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId}/tests/{testId} [put]
func (h *CourseHandler) updateTest(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}
	testID, ok := parseParamInt(c, "testId", "考试ID")
	if !ok {
		return
	}

	var req UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(response.WithErrorCode(response.ParseError), response.WithErrorMessage(err.Error())))
		return
	}

	updated, bizErr := h.service.UpdateTest(courseID, testID, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, updated)
}

// removeTest 删除考试
// @Summary 删除考试
// @Tags 课程
// @Produce json
// @Param courseId path int true "课程ID"
// @Param testId path int true "考试ID"
// @Success 200 {object} dto.Response "删除成功"
// @Failure 403 {object} dto.Response "无权管理该课程"
// @Router /courses/{courseId}/tests/{testId} [delete]
func (h *CourseHandler) removeTest(c *gin.Context) {
	courseID, ok := parseParamInt(c, "courseId", "课程ID")
	if !ok {
		return
	}
	testID, ok := parseParamInt(c, "testId", "考试ID")
	if !ok {
		return
	}

	if bizErr := h.service.DeleteTest(courseID, testID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, nil)
}
