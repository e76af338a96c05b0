package coursetest

import (
	"time"

	"terminal-terrace/course-service/internal/model/course"
	"terminal-terrace/course-service/internal/model/user"
)

// Test 课程下的考试
type Test struct {
	ID        int           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string        `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Date      time.Time     `gorm:"column:date;type:timestamp;not null" json:"date"`
	CourseID  int           `gorm:"column:course_id;not null;index" json:"course_id"`
	Course    course.Course `gorm:"foreignKey:CourseID" json:"-"`
	CreatedAt time.Time     `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Test) TableName() string {
	return "tests"
}

// TestResult 考试成绩，千分制
type TestResult struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Result     int       `gorm:"column:result;not null" json:"result"`
	TestID     int       `gorm:"column:test_id;not null;index" json:"test_id"`
	Test       Test      `gorm:"foreignKey:TestID" json:"-"`
	StudentID  int       `gorm:"column:student_id;not null;index" json:"student_id"`
	Student    user.User `gorm:"foreignKey:StudentID" json:"-"`
	GraderID   int       `gorm:"column:grader_id;not null" json:"grader_id"`
	Grader     user.User `gorm:"foreignKey:GraderID" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (TestResult) TableName() string {
	return "test_results"
}
