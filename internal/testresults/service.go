package testresults

import (
	"errors"

	"terminal-terrace/course-service/internal/database"
	"terminal-terrace/course-service/internal/model/coursetest"
	"terminal-terrace/course-service/response"

	"gorm.io/gorm"
)

type TestResultService struct{}

func NewTestResultService() *TestResultService {
	return &TestResultService{}
}

// findTest 确认考试属于指定课程
func (s *TestResultService) findTest(courseID, testID int) (*coursetest.Test, *response.BusinessError) {
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
	return &fetched, nil
}

// ListByStudent 查询学生的全部成绩
func (s *TestResultService) ListByStudent(studentID int) ([]coursetest.TestResult, *response.BusinessError) {
	var result []coursetest.TestResult
	if err := database.PostgresDB.
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&result).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询成绩失败"),
			response.WithError(err),
		)
	}
	return result, nil
}

// ListByTest 查询一场考试的全部成绩
func (s *TestResultService) ListByTest(courseID, testID int) ([]coursetest.TestResult, *response.BusinessError) {
	if _, bizErr := s.findTest(courseID, testID); bizErr != nil {
		return nil, bizErr
	}

	var result []coursetest.TestResult
	if err := database.PostgresDB.
		Where("test_id = ?", testID).
		Order("id ASC").
		Find(&result).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询成绩失败"),
			response.WithError(err),
		)
	}
	return result, nil
}

// Create 录入成绩，评卷人取自认证上下文
func (s *TestResultService) Create(courseID, testID, graderID int, req CreateTestResultRequest) (*coursetest.TestResult, *response.BusinessError) {
	if _, bizErr := s.findTest(courseID, testID); bizErr != nil {
		return nil, bizErr
	}

	newResult := coursetest.TestResult{
		Result:    req.Result,
		TestID:    testID,
		StudentID: req.StudentID,
		GraderID:  graderID,
	}
	if err := database.PostgresDB.Create(&newResult).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("录入成绩失败"),
			response.WithError(err),
		)
	}
	return &newResult, nil
}

// Update 修改成绩
func (s *TestResultService) Update(courseID, testID, resultID int, req UpdateTestResultRequest) (*coursetest.TestResult, *response.BusinessError) {
	if _, bizErr := s.findTest(courseID, testID); bizErr != nil {
		return nil, bizErr
	}

	var fetched coursetest.TestResult
	err := database.PostgresDB.Where("id = ? AND test_id = ?", resultID, testID).First(&fetched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("成绩记录不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询成绩失败"),
			response.WithError(err),
		)
	}

	if err := database.PostgresDB.Model(&fetched).Update("result", req.Result).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("修改成绩失败"),
			response.WithError(err),
		)
	}
	return &fetched, nil
}

// Delete 删除成绩记录
func (s *TestResultService) Delete(courseID, testID, resultID int) *response.BusinessError {
	if _, bizErr := s.findTest(courseID, testID); bizErr != nil {
		return bizErr
	}

	result := database.PostgresDB.Where("id = ? AND test_id = ?", resultID, testID).Delete(&coursetest.TestResult{})
	if result.Error != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("删除成绩失败"),
			response.WithError(result.Error),
		)
	}
	if result.RowsAffected == 0 {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("成绩记录不存在"),
		)
	}
	return nil
}
