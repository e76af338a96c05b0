package enrollments

import "terminal-terrace/course-service/internal/model/enrollment"

// EnrollRequest 选课请求
type EnrollRequest struct {
	CourseID int             `json:"course_id" binding:"required" example:"1"`
	Role     enrollment.Role `json:"role" binding:"required,oneof=TEACHER STUDENT" example:"STUDENT"`
}

// EnrollmentInfo 选课信息
type EnrollmentInfo struct {
	CourseID   int             `json:"course_id"`
	CourseName string          `json:"course_name"`
	Role       enrollment.Role `json:"role"`
}
