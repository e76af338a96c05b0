package login

// LoginRequest 登录请求
type LoginRequest struct {
	Email string `json:"email" binding:"required,email" example:"grace@hey.com"` // 登录邮箱
}
