package authz

// AuthContext 单次请求的认证上下文
// 由认证中间件在每次请求时重新构建，随请求传递，不跨请求缓存
type AuthContext struct {
	UserID    int
	TokenID   int
	IsAdmin   bool
	TeacherOf []int // 该用户以 TEACHER 角色参与的课程 id
}

// CanActOnUser 管理员或本人允许操作指定用户
func CanActOnUser(ctx *AuthContext, userID int) bool {
	if ctx.IsAdmin {
		return true
	}
	return ctx.UserID == userID
}

// CanManageCourse 管理员或该课程的教师允许管理课程
func CanManageCourse(ctx *AuthContext, courseID int) bool {
	if ctx.IsAdmin {
		return true
	}
	for _, id := range ctx.TeacherOf {
		if id == courseID {
			return true
		}
	}
	return false
}
