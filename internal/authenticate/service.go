package authenticate

import (
	"errors"
	"time"

	"terminal-terrace/course-service/internal/database"
	tokenModel "terminal-terrace/course-service/internal/model/token"
	tokenPkg "terminal-terrace/course-service/internal/token"
	"terminal-terrace/course-service/response"

	"gorm.io/gorm"
)

const (
	// API 令牌有效期（小时）
	APITokenExpireHours = 12
)

// 换取失败时回滚事务用的内部错误
var errTokenConsumed = errors.New("email token already consumed")

type AuthenticateService struct {
	issuer *tokenPkg.Issuer
}

func NewAuthenticateService(issuer *tokenPkg.Issuer) *AuthenticateService {
	return &AuthenticateService{issuer: issuer}
}

// Authenticate 用邮箱验证码换取签名的 API 令牌
// 校验顺序：存在且有效 -> 未过期 -> 邮箱逐字符相等。
// 换取在单个事务内完成：先写入 API 令牌记录，再条件更新使验证码失效；
// 条件更新未命中说明验证码已被并发请求消费，整个事务回滚。
func (s *AuthenticateService) Authenticate(req AuthenticateRequest) (string, *response.BusinessError) {
	db := database.PostgresDB

	// 1. 按验证码原文查找 EMAIL 令牌
	var fetched tokenModel.Token
	err := db.Preload("User").Where("email_token = ?", req.EmailToken).First(&fetched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("验证码无效"),
			)
		}
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询验证码失败"),
			response.WithError(err),
		)
	}

	if !fetched.Valid {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("验证码无效"),
		)
	}

	// 2. 过期判定优先于邮箱比对
	if fetched.Expiration.Before(time.Now()) {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("验证码已过期"),
		)
	}

	// 3. 邮箱必须与验证码归属邮箱逐字符相等
	if fetched.User.Email != req.Email {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("邮箱与验证码不匹配"),
		)
	}

	// 4. 事务内签发 API 令牌并消费验证码
	var bearer string
	err = db.Transaction(func(tx *gorm.DB) error {
		apiToken := tokenModel.Token{
			Type:       tokenModel.TypeAPI,
			Valid:      true,
			Expiration: time.Now().Add(APITokenExpireHours * time.Hour),
			UserID:     fetched.UserID,
		}
		if err := tx.Create(&apiToken).Error; err != nil {
			return err
		}

		// 条件更新：验证码只能被成功消费一次
		result := tx.Model(&tokenModel.Token{}).
			Where("id = ? AND valid", fetched.ID).
			Update("valid", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return errTokenConsumed
		}

		signed, err := s.issuer.Sign(apiToken.ID)
		if err != nil {
			return err
		}
		bearer = signed
		return nil
	})

	if err != nil {
		if errors.Is(err, errTokenConsumed) {
			return "", response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("验证码无效"),
			)
		}
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("签发访问令牌失败"),
			response.WithError(err),
		)
	}

	return bearer, nil
}
