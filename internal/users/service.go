package users

import (
	"errors"

	"terminal-terrace/course-service/internal/database"
	"terminal-terrace/course-service/internal/model/user"
	"terminal-terrace/course-service/response"

	"gorm.io/gorm"
)

type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

// Create 创建用户
func (s *UserService) Create(req CreateUserRequest) (CreateUserResponse, *response.BusinessError) {
	// 邮箱唯一
	var existing user.User
	if err := database.PostgresDB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return CreateUserResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("邮箱已被注册"),
		)
	}

	newUser := user.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Social:    req.Social,
	}

	if err := database.PostgresDB.Create(&newUser).Error; err != nil {
		return CreateUserResponse{}, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("用户创建失败"),
			response.WithError(err),
		)
	}

	return CreateUserResponse{ID: newUser.ID}, nil
}

// Get 查询单个用户
func (s *UserService) Get(userID int) (*user.User, *response.BusinessError) {
	var fetched user.User
	if err := database.PostgresDB.First(&fetched, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}
	return &fetched, nil
}

// Update 更新用户资料，只更新请求中出现的字段
func (s *UserService) Update(userID int, req UpdateUserRequest) (*user.User, *response.BusinessError) {
	fetched, bizErr := s.Get(userID)
	if bizErr != nil {
		return nil, bizErr
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		// 换绑邮箱同样受唯一约束
		var occupied user.User
		if err := database.PostgresDB.
			Where("email = ? AND id <> ?", *req.Email, userID).
			First(&occupied).Error; err == nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("邮箱已被注册"),
			)
		}
		updates["email"] = *req.Email
	}
	if req.Social != nil {
		fetched.Social = req.Social
		updates["social"] = fetched.Social
	}

	if len(updates) > 0 {
		if err := database.PostgresDB.Model(fetched).Updates(updates).Error; err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Internal),
				response.WithErrorMessage("更新用户失败"),
				response.WithError(err),
			)
		}
	}

	return fetched, nil
}

// Delete 删除用户
func (s *UserService) Delete(userID int) *response.BusinessError {
	if _, bizErr := s.Get(userID); bizErr != nil {
		return bizErr
	}

	if err := database.PostgresDB.Delete(&user.User{}, userID).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Internal),
			response.WithErrorMessage("删除用户失败"),
			response.WithError(err),
		)
	}
	return nil
}
