package model

import (
	"fmt"

	"terminal-terrace/course-service/internal/model/course"
	"terminal-terrace/course-service/internal/model/coursetest"
	"terminal-terrace/course-service/internal/model/enrollment"
	"terminal-terrace/course-service/internal/model/token"
	"terminal-terrace/course-service/internal/model/user"

	"gorm.io/gorm"
)

// GetModels 返回所有需要迁移的模型
func GetModels() []interface{} {
	return []interface{}{
		&user.User{},
		&token.Token{},
		&course.Course{},
		&enrollment.CourseEnrollment{},
		&coursetest.Test{},
		&coursetest.TestResult{},
	}
}

func InitTable(db *gorm.DB) error {
	models := GetModels()

	// 执行自动迁移
	err := db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("数据库表迁移失败: %v", err)
	}

	return nil
}
