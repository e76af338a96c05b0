package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrMalformedToken   = errors.New("malformed token payload")
)

// Claims API 令牌载荷，只携带令牌记录 id
// 不带时间声明：过期与否由数据库中的令牌记录判定，而不是解码签名串
type Claims struct {
	TokenID int `json:"token_id"`
	jwt.RegisteredClaims
}

// Issuer 负责 API 令牌签名串的签发与校验
// 密钥在构造时注入，进程启动后只读，可被并发使用
type Issuer struct {
	secret []byte
}

// NewIssuer 创建签发器
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Sign 以令牌记录 id 为载荷生成 HS256 签名串
func (i *Issuer) Sign(tokenID int) (string, error) {
	claims := &Claims{
		TokenID: tokenID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse 校验签名并取出令牌记录 id
// 签名无效返回 ErrInvalidSignature；载荷缺少合法 id 返回 ErrMalformedToken
func (i *Issuer) Parse(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return i.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return 0, ErrMalformedToken
		}
		return 0, ErrInvalidSignature
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidSignature
	}

	if claims.TokenID <= 0 {
		return 0, ErrMalformedToken
	}

	return claims.TokenID, nil
}
