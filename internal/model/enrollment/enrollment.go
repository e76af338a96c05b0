package enrollment

import (
	"time"

	"terminal-terrace/course-service/internal/model/course"
	"terminal-terrace/course-service/internal/model/user"
)

type Role string

const (
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// CourseEnrollment 用户与课程的关联，带角色
type CourseEnrollment struct {
	UserID    int           `gorm:"column:user_id;primaryKey" json:"user_id"`
	CourseID  int           `gorm:"column:course_id;primaryKey" json:"course_id"`
	Role      Role          `gorm:"column:role;type:varchar(10);not null" json:"role"`
	User      user.User     `gorm:"foreignKey:UserID" json:"-"`
	Course    course.Course `gorm:"foreignKey:CourseID" json:"-"`
	CreatedAt time.Time     `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
}

func (CourseEnrollment) TableName() string {
	return "course_enrollments"
}
