package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	issuer := NewIssuer("test-secret-key")

	tests := []struct {
		name    string
		tokenID int
	}{
		{
			name:    "生成有效的签名串",
			tokenID: 1,
		},
		{
			name:    "较大的令牌ID",
			tokenID: 987654321,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bearer, err := issuer.Sign(tt.tokenID)
			assert.NoError(t, err)
			assert.NotEmpty(t, bearer)

			// 签名串能被同一密钥解回原 id
			parsedID, err := issuer.Parse(bearer)
			assert.NoError(t, err)
			assert.Equal(t, tt.tokenID, parsedID)
		})
	}
}

func TestSignNoTimeClaims(t *testing.T) {
	issuer := NewIssuer("test-secret-key")

	bearer, err := issuer.Sign(42)
	assert.NoError(t, err)

	// 载荷中只有 token_id，不携带任何时间声明
	parsed, _, err := jwt.NewParser().ParseUnverified(bearer, &Claims{})
	assert.NoError(t, err)

	claims, ok := parsed.Claims.(*Claims)
	assert.True(t, ok)
	assert.Equal(t, 42, claims.TokenID)
	assert.Nil(t, claims.ExpiresAt)
	assert.Nil(t, claims.IssuedAt)
	assert.Nil(t, claims.NotBefore)
}

func TestParse(t *testing.T) {
	issuer := NewIssuer("test-secret-key")

	validBearer, err := issuer.Sign(7)
	assert.NoError(t, err)

	otherIssuer := NewIssuer("another-secret-key")
	foreignBearer, err := otherIssuer.Sign(7)
	assert.NoError(t, err)

	// 载荷缺少 token_id 的签名串
	emptyPayload := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{})
	noIDBearer, err := emptyPayload.SignedString([]byte("test-secret-key"))
	assert.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		wantID    int
		expectErr error
	}{
		{
			name:      "解析有效的签名串",
			token:     validBearer,
			wantID:    7,
			expectErr: nil,
		},
		{
			name:      "解析空字符串",
			token:     "",
			expectErr: ErrMalformedToken,
		},
		{
			name:      "解析非 JWT 字符串",
			token:     "not-a-jwt-token",
			expectErr: ErrMalformedToken,
		},
		{
			name:      "其他密钥签发的签名串",
			token:     foreignBearer,
			expectErr: ErrInvalidSignature,
		},
		{
			name:      "载荷缺少令牌ID",
			token:     noIDBearer,
			expectErr: ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := issuer.Parse(tt.token)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
