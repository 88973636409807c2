package jwtx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	issuer        = "bazaarfly-notification"
	defaultExpire = 24 * time.Hour

	ClaimUID  = "uid"
	ClaimRole = "role"
)

var ErrInvalidToken = errors.New("无效的令牌")

// Auth HS256 签发和校验令牌
type Auth struct {
	key []byte
}

func NewAuth(key string) *Auth {
	return &Auth{key: []byte(key)}
}

// UserClaims 网关和后台都用这两个字段识别用户
func UserClaims(uid, role string) jwt.MapClaims {
	return jwt.MapClaims{
		ClaimUID:  uid,
		ClaimRole: role,
	}
}

// Encode 自定义声明会覆盖默认的 iat 和 iss，没有 exp 时默认 24 小时过期
func (a *Auth) Encode(customClaims jwt.MapClaims) (string, error) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"iss": issuer,
	}
	for k, v := range customClaims {
		claims[k] = v
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(defaultExpire).Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

func (a *Auth) Decode(tokenString string) (jwt.MapClaims, error) {
	// 兼容带 Bearer 前缀的写法
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// StringClaim 取字符串类型的声明，不存在或者类型不对返回空字符串
func StringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
