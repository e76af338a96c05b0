package enrollments

import (
	"errors"

	"terminal-terrace/course-service/internal/database"
	"terminal-terrace/course-service/internal/model/course"
	"terminal-terrace/course-service/internal/model/enrollment"
	"terminal-terrace/course-service/response"

	"gorm.io/gorm"
)

type EnrollmentService struct{}

func NewEnrollmentService() *EnrollmentService {
	return &EnrollmentService{}
}

// List 查询用户的选课记录
func (s *EnrollmentService) List(userID int) ([]EnrollmentInfo, *response.BusinessError) {
	var rows []enrollment.CourseEnrollment
	if err := database.PostgresDB.Preload("Course").
		Where("user_id = ?", userID).
		Order("course_id ASC").
		Find(&rows).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询选课记录失败"),
			response.WithError(err),
		)
	}

	result := make([]EnrollmentInfo, len(rows))
	for i, row := range rows {
		result[i] = EnrollmentInfo{
			CourseID:   row.CourseID,
			CourseName: row.Course.Name,
			Role:       row.Role,
		}
	}
	return result, nil
}

// Enroll 将用户以指定角色加入课程
func (s *EnrollmentService) Enroll(userID int, req EnrollRequest) *response.BusinessError {
	// 课程必须存在
	var fetched course.Course
	if err := database.PostgresDB.First(&fetched, req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("课程不存在"),
			)
		}
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询课程失败"),
			response.WithError(err),
		)
	}

	// 同一用户同一课程只允许一条选课记录
	var existing enrollment.CourseEnrollment
	if err := database.PostgresDB.
		Where("user_id = ? AND course_id = ?", userID, req.CourseID).
		First(&existing).Error; err == nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("已有该课程的选课记录"),
		)
	}

	if err := database.PostgresDB.Create(&enrollment.CourseEnrollment{
		UserID:   userID,
		CourseID: req.CourseID,
		Role:     req.Role,
	}).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("选课失败"),
			response.WithError(err),
		)
	}
	return nil
}

// Withdraw 退出课程
func (s *EnrollmentService) Withdraw(userID, courseID int) *response.BusinessError {
	result := database.PostgresDB.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&enrollment.CourseEnrollment{})
	if result.Error != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("退课失败"),
			response.WithError(result.Error),
		)
	}
	if result.RowsAffected == 0 {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("选课记录不存在"),
		)
	}
	return nil
}
