package courses

import "time"

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Name          string  `json:"name" binding:"required" example:"CRUD with Prisma"`
	CourseDetails *string `json:"course_details" example:"A soothing introduction"`
}

// UpdateCourseRequest 更新课程请求，字段均可选
type UpdateCourseRequest struct {
	Name          *string `json:"name"`
	CourseDetails *string `json:"course_details"`
}

// CreateTestRequest 创建考试请求
type CreateTestRequest struct {
	Name string    `json:"name" binding:"required" example:"First test"`
	Date time.Time `json:"date" binding:"required" example:"2026-09-07T10:00:00Z"`
}

// UpdateTestRequest 更新考试请求，字段均可选
type UpdateTestRequest struct {
	Name *string    `json:"name"`
	Date *time.Time `json:"date"`
}
