package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"terminal-terrace/course-service/internal/authenticate"
	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/internal/login"
	"terminal-terrace/course-service/internal/model/enrollment"
	tokenModel "terminal-terrace/course-service/internal/model/token"
	"terminal-terrace/course-service/internal/testutils"
	tokenPkg "terminal-terrace/course-service/internal/token"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type captureMailer struct {
	lastCode string
}

func (m *captureMailer) SendLoginCode(to string, code string, expireMinutes int) error {
	m.lastCode = code
	return nil
}

func TestResolve(t *testing.T) {
	db := testutils.SetupTestDB(t)
	issuer := tokenPkg.NewIssuer("test-secret-key")

	owner := testutils.CreateTestUser(db)
	taught := testutils.CreateTestCourse(db)
	attended := testutils.CreateTestCourse(db)
	testutils.CreateTestEnrollment(db, owner.ID, taught.ID, enrollment.RoleTeacher)
	testutils.CreateTestEnrollment(db, owner.ID, attended.ID, enrollment.RoleStudent)

	validToken := testutils.CreateTestAPIToken(db, owner.ID)
	validBearer, err := issuer.Sign(validToken.ID)
	assert.NoError(t, err)

	revokedToken := testutils.CreateTestAPIToken(db, owner.ID, testutils.WithInvalid())
	revokedBearer, err := issuer.Sign(revokedToken.ID)
	assert.NoError(t, err)

	// 已过期但 valid 仍为 true
	expiredToken := testutils.CreateTestAPIToken(db, owner.ID,
		testutils.WithExpiration(time.Now().Add(-time.Minute)))
	expiredBearer, err := issuer.Sign(expiredToken.ID)
	assert.NoError(t, err)

	// 过期且已撤销：撤销优先于过期被报告
	deadToken := testutils.CreateTestAPIToken(db, owner.ID,
		testutils.WithInvalid(), testutils.WithExpiration(time.Now().Add(-time.Minute)))
	deadBearer, err := issuer.Sign(deadToken.ID)
	assert.NoError(t, err)

	missingBearer, err := issuer.Sign(validToken.ID + 100000)
	assert.NoError(t, err)

	foreignBearer, err := tokenPkg.NewIssuer("another-secret").Sign(validToken.ID)
	assert.NoError(t, err)

	t.Run("解析有效令牌", func(t *testing.T) {
		authCtx, bizErr := resolve(db, issuer, validBearer)
		assert.Nil(t, bizErr)
		assert.Equal(t, owner.ID, authCtx.UserID)
		assert.Equal(t, validToken.ID, authCtx.TokenID)
		assert.False(t, authCtx.IsAdmin)
		// 仅包含 TEACHER 角色的课程
		assert.Equal(t, []int{taught.ID}, authCtx.TeacherOf)
	})

	t.Run("管理员标志来自用户记录", func(t *testing.T) {
		admin := testutils.CreateTestUser(db, testutils.WithAdmin())
		adminToken := testutils.CreateTestAPIToken(db, admin.ID)
		adminBearer, err := issuer.Sign(adminToken.ID)
		assert.NoError(t, err)

		authCtx, bizErr := resolve(db, issuer, adminBearer)
		assert.Nil(t, bizErr)
		assert.True(t, authCtx.IsAdmin)
		assert.Empty(t, authCtx.TeacherOf)
	})

	failures := []struct {
		name     string
		bearer   string
		errorMsg string
	}{
		{
			name:     "签名无效",
			bearer:   foreignBearer,
			errorMsg: "无效的认证令牌",
		},
		{
			name:     "令牌格式错误",
			bearer:   "not-a-jwt",
			errorMsg: "格式错误",
		},
		{
			name:     "令牌记录不存在",
			bearer:   missingBearer,
			errorMsg: "无效的认证令牌",
		},
		{
			name:     "令牌已撤销",
			bearer:   revokedBearer,
			errorMsg: "无效的认证令牌",
		},
		{
			name:     "令牌已过期",
			bearer:   expiredBearer,
			errorMsg: "已过期",
		},
		{
			name:     "令牌已撤销且已过期",
			bearer:   deadBearer,
			errorMsg: "无效的认证令牌",
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			authCtx, bizErr := resolve(db, issuer, tt.bearer)
			assert.Nil(t, authCtx)
			assert.NotNil(t, bizErr)
			assert.Equal(t, response.Unauthorized, bizErr.Code)
			assert.Contains(t, bizErr.Msg, tt.errorMsg)
		})
	}
}

// 完整登录链路：请求验证码 -> 换取 API 令牌 -> 解析为认证上下文
func TestLoginAuthenticateResolveFlow(t *testing.T) {
	db := testutils.SetupTestDB(t)
	issuer := tokenPkg.NewIssuer("test-secret-key")

	mailer := &captureMailer{}
	loginService := login.NewLoginService(mailer)
	authService := authenticate.NewAuthenticateService(issuer)

	address := fmt.Sprintf("flow_%d@example.com", time.Now().UnixNano())

	assert.Nil(t, loginService.Login(login.LoginRequest{Email: address}))
	assert.Regexp(t, `^\d{8}$`, mailer.lastCode)

	bearer, bizErr := authService.Authenticate(authenticate.AuthenticateRequest{
		Email:      address,
		EmailToken: mailer.lastCode,
	})
	assert.Nil(t, bizErr)
	assert.NotEmpty(t, bearer)

	authCtx, bizErr := resolve(db, issuer, bearer)
	assert.Nil(t, bizErr)
	assert.False(t, authCtx.IsAdmin)
	assert.Empty(t, authCtx.TeacherOf)

	// 上下文归属登录邮箱对应的用户
	var fetched tokenModel.Token
	assert.NoError(t, db.Preload("User").First(&fetched, authCtx.TokenID).Error)
	assert.Equal(t, address, fetched.User.Email)
	assert.Equal(t, fetched.UserID, authCtx.UserID)
}

// guardRouter 只挂认证与授权中间件的最小路由
func guardRouter(issuer *tokenPkg.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	guarded := r.Group("", APIAuth(issuer))
	guarded.GET("/users/:userId", RequireSelfOrAdmin("userId"), func(c *gin.Context) {
		dto.SuccessResponse(c, nil)
	})
	guarded.PUT("/courses/:courseId", RequireTeacherOrAdmin("courseId"), func(c *gin.Context) {
		dto.SuccessResponse(c, nil)
	})
	return r
}

func TestAuthMiddlewareHTTPStatus(t *testing.T) {
	db := testutils.SetupTestDB(t)
	issuer := tokenPkg.NewIssuer("test-secret-key")
	router := guardRouter(issuer)

	owner := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	taught := testutils.CreateTestCourse(db)
	notTaught := testutils.CreateTestCourse(db)
	testutils.CreateTestEnrollment(db, owner.ID, taught.ID, enrollment.RoleTeacher)

	apiToken := testutils.CreateTestAPIToken(db, owner.ID)
	bearer, err := issuer.Sign(apiToken.ID)
	assert.NoError(t, err)

	tamperedBearer, err := tokenPkg.NewIssuer("another-secret").Sign(apiToken.ID)
	assert.NoError(t, err)

	cases := []struct {
		name   string
		method string
		path   string
		bearer string
		status int
	}{
		{
			name:   "未携带认证头",
			method: http.MethodGet,
			path:   fmt.Sprintf("/users/%d", owner.ID),
			status: http.StatusUnauthorized,
		},
		{
			name:   "令牌被篡改",
			method: http.MethodGet,
			path:   fmt.Sprintf("/users/%d", owner.ID),
			bearer: tamperedBearer,
			status: http.StatusUnauthorized,
		},
		{
			name:   "访问本人资源",
			method: http.MethodGet,
			path:   fmt.Sprintf("/users/%d", owner.ID),
			bearer: bearer,
			status: http.StatusOK,
		},
		{
			name:   "访问他人资源",
			method: http.MethodGet,
			path:   fmt.Sprintf("/users/%d", other.ID),
			bearer: bearer,
			status: http.StatusForbidden,
		},
		{
			name:   "用户 id 不是整数",
			method: http.MethodGet,
			path:   "/users/abc",
			bearer: bearer,
			status: http.StatusBadRequest,
		},
		{
			name:   "管理授课课程",
			method: http.MethodPut,
			path:   fmt.Sprintf("/courses/%d", taught.ID),
			bearer: bearer,
			status: http.StatusOK,
		},
		{
			name:   "管理非授课课程",
			method: http.MethodPut,
			path:   fmt.Sprintf("/courses/%d", notTaught.ID),
			bearer: bearer,
			status: http.StatusForbidden,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("管理员跨用户访问", func(t *testing.T) {
		admin := testutils.CreateTestUser(db, testutils.WithAdmin())
		adminToken := testutils.CreateTestAPIToken(db, admin.ID)
		adminBearer, err := issuer.Sign(adminToken.ID)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d", other.ID), nil)
		req.Header.Set("Authorization", "Bearer "+adminBearer)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
