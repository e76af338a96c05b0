package courses

import (
	"errors"

	"terminal-terrace/course-service/internal/database"
	"terminal-terrace/course-service/internal/model/course"
	"terminal-terrace/course-service/internal/model/coursetest"
	"terminal-terrace/course-service/internal/model/enrollment"
	"terminal-terrace/course-service/response"

	"gorm.io/gorm"
)

type CourseService struct{}

func NewCourseService() *CourseService {
	return &CourseService{}
}

// Create 创建课程，创建者自动成为该课程教师
func (s *CourseService) Create(creatorID int, req CreateCourseRequest) (*course.Course, *response.BusinessError) {
	newCourse := course.Course{
		Name:          req.Name,
		CourseDetails: req.CourseDetails,
	}

	err := database.PostgresDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newCourse).Error; err != nil {
			return err
		}
		return tx.Create(&enrollment.CourseEnrollment{
			UserID:   creatorID,
			CourseID: newCourse.ID,
			Role:     enrollment.RoleTeacher,
		}).Error
	})
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("课程创建失败"),
			response.WithError(err),
		)
	}

	return &newCourse, nil
}

// List 查询课程列表
func (s *CourseService) List() ([]course.Course, *response.BusinessError) {
	var result []course.Course
	if err := database.PostgresDB.Order("id ASC").Find(&result).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询课程列表失败"),
			response.WithError(err),
		)
	}
	return result, nil
}

// Get 查询单个课程
func (s *CourseService) Get(courseID int) (*course.Course, *response.BusinessError) {
	var fetched course.Course
	if err := database.PostgresDB.First(&fetched, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("课程不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询课程失败"),
			response.WithError(err),
		)
	}
	return &fetched, nil
}

// Update 更新课程信息
func (s *CourseService) Update(courseID int, req UpdateCourseRequest) (*course.Course, *response.BusinessError) {
	fetched, bizErr := s.Get(courseID)
	if bizErr != nil {
		return nil, bizErr
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CourseDetails != nil {
		updates["course_details"] = *req.CourseDetails
	}

	if len(updates) > 0 {
		if err := database.PostgresDB.Model(fetched).Updates(updates).Error; err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Internal),
				response.WithErrorMessage("更新课程失败"),
				response.WithError(err),
			)
		}
	}

	return fetched, nil
}

// Delete 删除课程
func (s *CourseService) Delete(courseID int) *response.BusinessError {
	if _, bizErr := s.Get(courseID); bizErr != nil {
		return bizErr
	}

	if err := database.PostgresDB.Delete(&course.Course{}, courseID).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("删除课程失败"),
			response.WithError(err),
		)
	}
	return nil
}

// CreateTest 在课程下创建考试
func (s *CourseService) CreateTest(courseID int, req CreateTestRequest) (*coursetest.Test, *response.BusinessError) {
	if _, bizErr := s.Get(courseID); bizErr != nil {
		return nil, bizErr
	}

	newTest := coursetest.Test{
		Name:     req.Name,
		Date:     req.Date,
		CourseID: courseID,
	}
	if err := database.PostgresDB.Create(&newTest).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("考试创建失败"),
			response.WithError(err),
		)
	}
	return &newTest, nil
}

// ListTests 查询课程下的考试
func (s *CourseService) ListTests(courseID int) ([]coursetest.Test, *response.BusinessError) {
	if _, bizErr := s.Get(courseID); bizErr != nil {
		return nil, bizErr
	}

	var result []coursetest.Test
	if err := database.PostgresDB.Where("course_id = ?", courseID).Order("date ASC").Find(&result).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询考试列表失败"),
			response.WithError(err),
		)
	}
	return result, nil
}

// UpdateTest 更新课程下的考试
func (s *CourseService) UpdateTest(courseID, testID int, req UpdateTestRequest) (*coursetest.Test, *response.BusinessError) {
	var fetched coursetest.Test
	err := database.PostgresDB.Where("id = ? AND course_id = ?", testID, courseID).First(&fetched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("考试不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询考试失败"),
			response.WithError(err),
		)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}

	if len(updates) > 0 {
		if err := database.PostgresDB.Model(&fetched).Updates(updates).Error; err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Internal),
				response.WithErrorMessage("更新考试失败"),
				response.WithError(err),
			)
		}
	}

	return &fetched, nil
}

// DeleteTest 删除课程下的考试
func (s *CourseService) DeleteTest(courseID, testID int) *response.BusinessError {
	result := database.PostgresDB.Where("id = ? AND course_id = ?", testID, courseID).Delete(&coursetest.Test{})
	if result.Error != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("删除考试失败"),
			response.WithError(result.Error),
		)
	}
	if result.RowsAffected == 0 {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("考试不存在"),
		)
	}
	return nil
}
