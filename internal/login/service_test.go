package login

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"terminal-terrace/course-service/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	tokenModel "terminal-terrace/course-service/internal/model/token"
	"terminal-terrace/course-service/internal/model/user"
	"terminal-terrace/course-service/response"
)

var emailTokenPattern = regexp.MustCompile(`^\d{8}$`)

// fakeMailer 捕获投递的验证码，不发真实邮件
type fakeMailer struct {
	sentTo   []string
	sentCode []string
	failWith error
}

func (m *fakeMailer) SendLoginCode(to string, code string, expireMinutes int) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.sentTo = append(m.sentTo, to)
	m.sentCode = append(m.sentCode, code)
	return nil
}

func TestGenerateEmailToken(t *testing.T) {
	// 验证码始终是 [10000000, 99999999] 内的 8 位数字
	for i := 0; i < 1000; i++ {
		code := generateEmailToken()
		assert.Regexp(t, emailTokenPattern, code)

		value, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, value, 10000000)
		assert.LessOrEqual(t, value, 99999999)
	}
}

func TestLoginCreatesUserAndToken(t *testing.T) {
	db := testutils.SetupTestDB(t)

	mailer := &fakeMailer{}
	service := NewLoginService(mailer)

	address := fmt.Sprintf("login_%s@example.com", uuid.New().String())
	bizErr := service.Login(LoginRequest{Email: address})
	assert.Nil(t, bizErr)

	// 新邮箱自动注册，默认非管理员
	var owner user.User
	assert.NoError(t, db.Where("email = ?", address).First(&owner).Error)
	assert.False(t, owner.IsAdmin)

	// 令牌记录：EMAIL 类型、有效、10 分钟内过期
	var created tokenModel.Token
	assert.NoError(t, db.Where("user_id = ?", owner.ID).First(&created).Error)
	assert.Equal(t, tokenModel.TypeEmail, created.Type)
	assert.True(t, created.Valid)
	assert.NotNil(t, created.EmailToken)
	assert.Regexp(t, emailTokenPattern, *created.EmailToken)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), created.Expiration, time.Minute)

	// 投递的验证码与落库的一致
	assert.Equal(t, []string{address}, mailer.sentTo)
	assert.Equal(t, []string{*created.EmailToken}, mailer.sentCode)
}

func TestLoginReusesExistingUser(t *testing.T) {
	db := testutils.SetupTestDB(t)

	existing := testutils.CreateTestUser(db)
	service := NewLoginService(&fakeMailer{})

	bizErr := service.Login(LoginRequest{Email: existing.Email})
	assert.Nil(t, bizErr)

	// 不会因重复登录产生第二个用户
	var count int64
	assert.NoError(t, db.Model(&user.User{}).Where("email = ?", existing.Email).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoginKeepsEarlierCodesValid(t *testing.T) {
	db := testutils.SetupTestDB(t)

	existing := testutils.CreateTestUser(db)
	service := NewLoginService(&fakeMailer{})

	assert.Nil(t, service.Login(LoginRequest{Email: existing.Email}))
	assert.Nil(t, service.Login(LoginRequest{Email: existing.Email}))

	// 两个验证码同时有效，新登录不回收旧验证码
	var count int64
	assert.NoError(t, db.Model(&tokenModel.Token{}).
		Where("user_id = ? AND type = ? AND valid", existing.ID, tokenModel.TypeEmail).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLoginDispatchFailureKeepsToken(t *testing.T) {
	db := testutils.SetupTestDB(t)

	existing := testutils.CreateTestUser(db)
	service := NewLoginService(&fakeMailer{failWith: errors.New("smtp down")})

	bizErr := service.Login(LoginRequest{Email: existing.Email})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.Internal, bizErr.Code)

	// 投递失败时令牌记录不回滚
	var count int64
	assert.NoError(t, db.Model(&tokenModel.Token{}).
		Where("user_id = ? AND type = ?", existing.ID, tokenModel.TypeEmail).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
