package testresults

import (
	"testing"
	"time"

	"terminal-terrace/course-service/internal/model/coursetest"
	"terminal-terrace/course-service/internal/testutils"
	"terminal-terrace/course-service/response"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createExam(t *testing.T, db *gorm.DB, courseID int) *coursetest.Test {
	t.Helper()
	exam := &coursetest.Test{
		Name:     "期中考试",
		Date:     time.Now().Add(24 * time.Hour),
		CourseID: courseID,
	}
	assert.NoError(t, db.Create(exam).Error)
	return exam
}

func TestTestResultLifecycle(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTestResultService()

	teacher := testutils.CreateTestUser(db)
	student := testutils.CreateTestUser(db)
	taught := testutils.CreateTestCourse(db)
	exam := createExam(t, db, taught.ID)

	created, bizErr := service.Create(taught.ID, exam.ID, teacher.ID, CreateTestResultRequest{
		StudentID: student.ID,
		Result:    950,
	})
	assert.Nil(t, bizErr)
	assert.Equal(t, teacher.ID, created.GraderID)
	assert.Equal(t, student.ID, created.StudentID)

	byTest, bizErr := service.ListByTest(taught.ID, exam.ID)
	assert.Nil(t, bizErr)
	assert.Len(t, byTest, 1)

	byStudent, bizErr := service.ListByStudent(student.ID)
	assert.Nil(t, bizErr)
	assert.Len(t, byStudent, 1)
	assert.Equal(t, 950, byStudent[0].Result)

	updated, bizErr := service.Update(taught.ID, exam.ID, created.ID, UpdateTestResultRequest{Result: 900})
	assert.Nil(t, bizErr)
	assert.Equal(t, 900, updated.Result)

	assert.Nil(t, service.Delete(taught.ID, exam.ID, created.ID))

	byTest, bizErr = service.ListByTest(taught.ID, exam.ID)
	assert.Nil(t, bizErr)
	assert.Empty(t, byTest)
}

// 考试必须属于路径中的课程，错配按不存在处理
func TestTestResultCourseMismatch(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTestResultService()

	teacher := testutils.CreateTestUser(db)
	student := testutils.CreateTestUser(db)
	taught := testutils.CreateTestCourse(db)
	unrelated := testutils.CreateTestCourse(db)
	exam := createExam(t, db, taught.ID)

	created, bizErr := service.Create(taught.ID, exam.ID, teacher.ID, CreateTestResultRequest{
		StudentID: student.ID,
		Result:    800,
	})
	assert.Nil(t, bizErr)

	_, bizErr = service.ListByTest(unrelated.ID, exam.ID)
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)

	_, bizErr = service.Update(unrelated.ID, exam.ID, created.ID, UpdateTestResultRequest{Result: 700})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)

	bizErr = service.Delete(unrelated.ID, exam.ID, created.ID)
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}
