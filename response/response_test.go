package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessResponse(t *testing.T) {
	r := SuccessResponse(map[string]int{"id": 1})
	assert.Equal(t, ResponseCode(Success), r.Code)
	assert.Equal(t, "success", r.Message)
	assert.Equal(t, map[string]int{"id": 1}, r.Data)
}

func TestErrorResponse(t *testing.T) {
	r := ErrorResponse(NotFound, "用户不存在")
	assert.Equal(t, NotFound, r.Code)
	assert.Equal(t, "用户不存在", r.Message)
	assert.Nil(t, r.Data)
}

func TestCustomResponse(t *testing.T) {
	r := CustomResponse(
		WithCode(Forbidden),
		WithMessage("无权操作"),
		WithData("detail"),
	)
	assert.Equal(t, Forbidden, r.Code)
	assert.Equal(t, "无权操作", r.Message)
	assert.Equal(t, "detail", r.Data)
}
