package enrollments

import (
	"testing"

	"terminal-terrace/course-service/internal/model/enrollment"
	"terminal-terrace/course-service/internal/testutils"
	"terminal-terrace/course-service/response"

	"github.com/stretchr/testify/assert"
)

func TestEnrollAndWithdraw(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewEnrollmentService()

	student := testutils.CreateTestUser(db)
	attended := testutils.CreateTestCourse(db)

	assert.Nil(t, service.Enroll(student.ID, EnrollRequest{
		CourseID: attended.ID,
		Role:     enrollment.RoleStudent,
	}))

	listed, bizErr := service.List(student.ID)
	assert.Nil(t, bizErr)
	assert.Len(t, listed, 1)
	assert.Equal(t, attended.ID, listed[0].CourseID)
	assert.Equal(t, attended.Name, listed[0].CourseName)
	assert.Equal(t, enrollment.RoleStudent, listed[0].Role)

	// 同一课程只允许一条选课记录
	bizErr = service.Enroll(student.ID, EnrollRequest{
		CourseID: attended.ID,
		Role:     enrollment.RoleTeacher,
	})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.Fail, bizErr.Code)

	assert.Nil(t, service.Withdraw(student.ID, attended.ID))

	listed, bizErr = service.List(student.ID)
	assert.Nil(t, bizErr)
	assert.Empty(t, listed)
}

func TestEnrollFailures(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewEnrollmentService()

	student := testutils.CreateTestUser(db)

	t.Run("课程不存在", func(t *testing.T) {
		bizErr := service.Enroll(student.ID, EnrollRequest{
			CourseID: 99999999,
			Role:     enrollment.RoleStudent,
		})
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})

	t.Run("退未选的课程", func(t *testing.T) {
		existing := testutils.CreateTestCourse(db)
		bizErr := service.Withdraw(student.ID, existing.ID)
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.NotFound, bizErr.Code)
	})
}
