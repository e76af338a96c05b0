package user

import "time"

// User 用户，含社交资料信息
type User struct {
	ID        int               `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName string            `gorm:"column:first_name;type:varchar(50)" json:"first_name"`
	LastName  string            `gorm:"column:last_name;type:varchar(50)" json:"last_name"`
	Email     string            `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	IsAdmin   bool              `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	Social    map[string]string `gorm:"column:social;serializer:json" json:"social,omitempty"`
	CreatedAt time.Time         `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
