package course

import "time"

// Course 课程
type Course struct {
	ID            int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	CourseDetails *string   `gorm:"column:course_details;type:text" json:"course_details,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
