package token

import (
	"time"

	"terminal-terrace/course-service/internal/model/user"
)

type TokenType string

const (
	// 邮箱验证码令牌，短期有效
	TypeEmail TokenType = "EMAIL"
	// API 访问令牌，长期有效
	TypeAPI TokenType = "API"
)

// Token 令牌记录
// EMAIL 类型令牌保存验证码原文；API 类型令牌只保存记录本身，
// 对外下发的是以 id 为载荷的签名串。过期不删除记录，按 expiration 判定。
type Token struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type       TokenType `gorm:"column:type;type:varchar(10);not null" json:"type"`
	EmailToken *string   `gorm:"column:email_token;type:varchar(8);uniqueIndex" json:"-"`
	Valid      bool      `gorm:"column:valid;not null;default:true" json:"valid"`
	Expiration time.Time `gorm:"column:expiration;type:timestamp;not null" json:"expiration"`
	UserID     int       `gorm:"column:user_id;not null;index" json:"user_id"`
	User       user.User `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (Token) TableName() string {
	return "tokens"
}
