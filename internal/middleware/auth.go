package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"terminal-terrace/course-service/internal/authz"
	"terminal-terrace/course-service/internal/database"
	"terminal-terrace/course-service/internal/dto"
	"terminal-terrace/course-service/internal/model/enrollment"
	tokenModel "terminal-terrace/course-service/internal/model/token"
	tokenPkg "terminal-terrace/course-service/internal/token"
	"terminal-terrace/course-service/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const authContextKey = "auth_context"

// extractBearer 从 Authorization header 中取出签名串
func extractBearer(c *gin.Context) (string, *response.BusinessError) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未提供认证令牌"),
		)
	}

	// 兼容 "Bearer <token>" 与裸令牌两种格式
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}
	return authHeader, nil
}

// resolve 将签名串解析为认证上下文
// 先verify签名取出令牌 id，再查库判定有效性与过期，最后投影授课课程集合。
// 除读取外不修改任何存储状态。
func resolve(db *gorm.DB, issuer *tokenPkg.Issuer, bearer string) (*authz.AuthContext, *response.BusinessError) {
	tokenID, err := issuer.Parse(bearer)
	if err != nil {
		msg := "无效的认证令牌"
		if errors.Is(err, tokenPkg.ErrMalformedToken) {
			msg = "认证令牌格式错误"
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage(msg),
			response.WithError(err),
		)
	}

	var fetched tokenModel.Token
	if err := db.Preload("User").First(&fetched, tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("无效的认证令牌"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询令牌失败"),
			response.WithError(err),
		)
	}

	if !fetched.Valid {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("无效的认证令牌"),
		)
	}

	if fetched.Expiration.Before(time.Now()) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("认证令牌已过期"),
		)
	}

	// 授课课程集合，固定按课程 id 排序
	var teacherOf []int
	if err := db.Model(&enrollment.CourseEnrollment{}).
		Where("user_id = ? AND role = ?", fetched.UserID, enrollment.RoleTeacher).
		Order("course_id ASC").
		Pluck("course_id", &teacherOf).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询授课信息失败"),
			response.WithError(err),
		)
	}

	return &authz.AuthContext{
		UserID:    fetched.UserID,
		TokenID:   fetched.ID,
		IsAdmin:   fetched.User.IsAdmin,
		TeacherOf: teacherOf,
	}, nil
}

// APIAuth API 令牌认证中间件
// 每次请求重新构建认证上下文并存入 gin context
func APIAuth(issuer *tokenPkg.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		bearer, bizErr := extractBearer(c)
		if bizErr != nil {
			dto.ErrorResponse(c, bizErr)
			c.Abort()
			return
		}

		authCtx, bizErr := resolve(database.PostgresDB, issuer, bearer)
		if bizErr != nil {
			dto.ErrorResponse(c, bizErr)
			c.Abort()
			return
		}

		c.Set(authContextKey, authCtx)
		c.Next()
	}
}

// GetAuthContext 从 gin context 取出认证上下文
// 只在 APIAuth 之后的 handler 中调用
func GetAuthContext(c *gin.Context) (*authz.AuthContext, bool) {
	value, exists := c.Get(authContextKey)
	if !exists {
		return nil, false
	}
	authCtx, ok := value.(*authz.AuthContext)
	return authCtx, ok
}

// pathParamInt 解析路径参数为整数
func pathParamInt(c *gin.Context, name string) (int, *response.BusinessError) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("路径参数 "+name+" 必须是整数"),
		)
	}
	return value, nil
}

// RequireSelfOrAdmin 仅允许管理员或路径参数指向的用户本人
// 必须挂在 APIAuth 之后
func RequireSelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("未认证的请求"),
			))
			c.Abort()
			return
		}

		userID, bizErr := pathParamInt(c, param)
		if bizErr != nil {
			dto.ErrorResponse(c, bizErr)
			c.Abort()
			return
		}

		if !authz.CanActOnUser(authCtx, userID) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("无权操作该用户"),
			))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireTeacherOrAdmin 仅允许管理员或路径参数指向课程的教师
// 必须挂在 APIAuth 之后
func RequireTeacherOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("未认证的请求"),
			))
			c.Abort()
			return
		}

		courseID, bizErr := pathParamInt(c, param)
		if bizErr != nil {
			dto.ErrorResponse(c, bizErr)
			c.Abort()
			return
		}

		if !authz.CanManageCourse(authCtx, courseID) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("无权管理该课程"),
			))
			c.Abort()
			return
		}

		c.Next()
	}
}
