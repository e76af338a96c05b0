package users

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	FirstName string            `json:"first_name" binding:"required" example:"Grace"`
	LastName  string            `json:"last_name" binding:"required" example:"Bell"`
	Email     string            `json:"email" binding:"required,email" example:"grace@hey.com"`
	Social    map[string]string `json:"social" example:"twitter:therealgracebell"` // 社交账号，键为平台名
}

// UpdateUserRequest 更新用户请求，字段均可选
type UpdateUserRequest struct {
	FirstName *string           `json:"first_name"`
	LastName  *string           `json:"last_name"`
	Email     *string           `json:"email" binding:"omitempty,email"`
	Social    map[string]string `json:"social"`
}

// CreateUserResponse 创建用户响应
type CreateUserResponse struct {
	ID int `json:"id" example:"1"`
}
