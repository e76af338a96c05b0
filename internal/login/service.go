package login

import (
	"fmt"
	"math/rand"
	"time"

	"terminal-terrace/course-service/internal/database"
	tokenModel "terminal-terrace/course-service/internal/model/token"
	"terminal-terrace/course-service/internal/model/user"
	"terminal-terrace/course-service/response"
)

const (
	// 邮箱验证码有效期（分钟）
	EmailTokenExpireMinutes = 10
)

// codeSender 验证码投递能力，由 email.Client 实现
type codeSender interface {
	SendLoginCode(to string, code string, expireMinutes int) error
}

type LoginService struct {
	mailer codeSender
}

func NewLoginService(mailer codeSender) *LoginService {
	return &LoginService{mailer: mailer}
}

// generateEmailToken 生成 8 位数字验证码，范围 [10000000, 99999999]
func generateEmailToken() string {
	return fmt.Sprintf("%d", 10000000+rand.Intn(90000000))
}

// Login 签发邮箱验证码
// 按邮箱取用户，不存在则创建（默认非管理员）；写入 EMAIL 令牌记录后投递邮件。
// 邮件投递失败时令牌记录保留，整个操作按失败返回。
// 新的登录请求不会使同一用户此前尚未使用的验证码失效。
func (s *LoginService) Login(req LoginRequest) *response.BusinessError {
	db := database.PostgresDB

	// 1. 按邮箱查找或创建用户
	var owner user.User
	if err := db.Where(user.User{Email: req.Email}).FirstOrCreate(&owner).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查找或创建用户失败"),
			response.WithError(err),
		)
	}

	// 2. 生成验证码并写入令牌记录
	code := generateEmailToken()
	emailToken := tokenModel.Token{
		Type:       tokenModel.TypeEmail,
		EmailToken: &code,
		Valid:      true,
		Expiration: time.Now().Add(EmailTokenExpireMinutes * time.Minute),
		UserID:     owner.ID,
	}

	if err := db.Create(&emailToken).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("创建验证码令牌失败"),
			response.WithError(err),
		)
	}

	// 3. 投递验证码邮件
	if err := s.mailer.SendLoginCode(req.Email, code, EmailTokenExpireMinutes); err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("发送验证码邮件失败"),
			response.WithError(err),
		)
	}

	return nil
}
