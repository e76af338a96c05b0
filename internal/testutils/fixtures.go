package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"terminal-terrace/course-service/internal/model/course"
	"terminal-terrace/course-service/internal/model/enrollment"
	tokenModel "terminal-terrace/course-service/internal/model/token"
	"terminal-terrace/course-service/internal/model/user"
)

// CreateTestUser creates a test user with a unique email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()

	testUser := &user.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     fmt.Sprintf("test_%s@example.com", uniqueID),
		IsAdmin:   false,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithAdmin marks the user as admin
func WithAdmin() UserOption {
	return func(u *user.User) {
		u.IsAdmin = true
	}
}

// CreateTestCourse creates a course with a unique name
func CreateTestCourse(db *gorm.DB) *course.Course {
	testCourse := &course.Course{
		Name: fmt.Sprintf("test_course_%s", uuid.New().String()),
	}
	if err := db.Create(testCourse).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test course: %v", err))
	}
	return testCourse
}

// CreateTestEnrollment links a user to a course with the given role
func CreateTestEnrollment(db *gorm.DB, userID, courseID int, role enrollment.Role) *enrollment.CourseEnrollment {
	testEnrollment := &enrollment.CourseEnrollment{
		UserID:   userID,
		CourseID: courseID,
		Role:     role,
	}
	if err := db.Create(testEnrollment).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test enrollment: %v", err))
	}
	return testEnrollment
}

// TokenOption configures test token
type TokenOption func(*tokenModel.Token)

// WithExpiration sets the expiration timestamp
func WithExpiration(expiration time.Time) TokenOption {
	return func(tk *tokenModel.Token) {
		tk.Expiration = expiration
	}
}

// WithInvalid marks the token as already consumed
func WithInvalid() TokenOption {
	return func(tk *tokenModel.Token) {
		tk.Valid = false
	}
}

// CreateTestEmailToken creates an EMAIL token with the given code for the user
func CreateTestEmailToken(db *gorm.DB, userID int, code string, opts ...TokenOption) *tokenModel.Token {
	testToken := &tokenModel.Token{
		Type:       tokenModel.TypeEmail,
		EmailToken: &code,
		Valid:      true,
		Expiration: time.Now().Add(10 * time.Minute),
		UserID:     userID,
	}

	for _, opt := range opts {
		opt(testToken)
	}

	if err := db.Create(testToken).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test email token: %v", err))
	}

	return testToken
}

// CreateTestAPIToken creates an API token row for the user
func CreateTestAPIToken(db *gorm.DB, userID int, opts ...TokenOption) *tokenModel.Token {
	testToken := &tokenModel.Token{
		Type:       tokenModel.TypeAPI,
		Valid:      true,
		Expiration: time.Now().Add(12 * time.Hour),
		UserID:     userID,
	}

	for _, opt := range opts {
		opt(testToken)
	}

	if err := db.Create(testToken).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test api token: %v", err))
	}

	return testToken
}
