package testresults

// CreateTestResultRequest 录入成绩请求
type CreateTestResultRequest struct {
	StudentID int `json:"student_id" binding:"required" example:"2"`
	Result    int `json:"result" binding:"required,min=0,max=1000" example:"950"` // 千分制
}

// UpdateTestResultRequest 修改成绩请求
type UpdateTestResultRequest struct {
	Result int `json:"result" binding:"required,min=0,max=1000" example:"900"`
}
