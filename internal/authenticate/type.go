package authenticate

// AuthenticateRequest 验证码换取 API 令牌请求
type AuthenticateRequest struct {
	Email      string `json:"email" binding:"required,email" example:"grace@hey.com"` // 收到验证码的邮箱
	EmailToken string `json:"emailToken" binding:"required" example:"12345678"`       // 邮件中的 8 位验证码
}
