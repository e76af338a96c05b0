package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanActOnUser(t *testing.T) {
	tests := []struct {
		name   string
		ctx    *AuthContext
		userID int
		want   bool
	}{
		{
			name:   "管理员操作任意用户",
			ctx:    &AuthContext{UserID: 1, IsAdmin: true},
			userID: 99,
			want:   true,
		},
		{
			name:   "管理员操作本人",
			ctx:    &AuthContext{UserID: 1, IsAdmin: true},
			userID: 1,
			want:   true,
		},
		{
			name:   "普通用户操作本人",
			ctx:    &AuthContext{UserID: 1, IsAdmin: false},
			userID: 1,
			want:   true,
		},
		{
			name:   "普通用户操作他人",
			ctx:    &AuthContext{UserID: 1, IsAdmin: false},
			userID: 2,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanActOnUser(tt.ctx, tt.userID))
		})
	}
}

func TestCanManageCourse(t *testing.T) {
	tests := []struct {
		name     string
		ctx      *AuthContext
		courseID int
		want     bool
	}{
		{
			name:     "管理员管理任意课程",
			ctx:      &AuthContext{UserID: 1, IsAdmin: true, TeacherOf: []int{}},
			courseID: 42,
			want:     true,
		},
		{
			name:     "教师管理所授课程",
			ctx:      &AuthContext{UserID: 1, TeacherOf: []int{7, 42}},
			courseID: 42,
			want:     true,
		},
		{
			name:     "教师管理未授课程",
			ctx:      &AuthContext{UserID: 1, TeacherOf: []int{7, 42}},
			courseID: 8,
			want:     false,
		},
		{
			name:     "无授课记录的普通用户",
			ctx:      &AuthContext{UserID: 1, TeacherOf: nil},
			courseID: 42,
			want:     false,
		},
		{
			name:     "管理员且是该课程教师",
			ctx:      &AuthContext{UserID: 1, IsAdmin: true, TeacherOf: []int{42}},
			courseID: 42,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManageCourse(tt.ctx, tt.courseID))
		})
	}
}

// 预期判定与 isAdmin || 条件 完全一致，穷举对照
func TestGuardsTruthTable(t *testing.T) {
	for _, isAdmin := range []bool{false, true} {
		for _, selfMatch := range []bool{false, true} {
			ctx := &AuthContext{UserID: 1, IsAdmin: isAdmin}
			requested := 2
			if selfMatch {
				requested = 1
			}
			assert.Equal(t, isAdmin || selfMatch, CanActOnUser(ctx, requested),
				"isAdmin=%v selfMatch=%v", isAdmin, selfMatch)
		}

		for _, teaches := range []bool{false, true} {
			ctx := &AuthContext{UserID: 1, IsAdmin: isAdmin}
			if teaches {
				ctx.TeacherOf = []int{42}
			}
			assert.Equal(t, isAdmin || teaches, CanManageCourse(ctx, 42),
				"isAdmin=%v teaches=%v", isAdmin, teaches)
		}
	}
}
