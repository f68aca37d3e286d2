package utils

import (
	"context"
	"crypto/sha256"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Shreyash123-code/AICTE-project1/config"
	"github.com/Shreyash123-code/AICTE-project1/internal/infra/cache"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateToken(cfg *config.Config, userID uint, username string) (string, error) {
	// 生成唯一ID用于黑名单
	jti := time.Now().UnixNano() + rand.Int63()

	claims := jwt.MapClaims{
		"user_id":  strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"jti":      jti,
		"exp":      time.Now().Add(cfg.JWTExpirationTime).Unix(),
		"iat":      time.Now().Unix(),
		"iss":      cfg.JWTIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecretKey))
}

// 检查token是否在黑名单中
func IsTokenBlacklisted(rdb *cache.RedisCache, tokenString string) (bool, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return false, nil
	}

	// 只解析claims部分，不验证签名（因为要先检查黑名单）
	claims := jwt.MapClaims{}
	_, _, _ = jwt.NewParser().ParseUnverified(tokenString, claims)

	// 安全提取 jti（兼容 string 和 float64）
	var jtiStr string
	if jti, ok := claims["jti"].(string); ok {
		jtiStr = jti
	} else if jti, ok := claims["jti"].(float64); ok {
		jtiStr = strconv.FormatInt(int64(jti), 10)
	} else {
		// 没有 jti 或类型不对，无法加入黑名单
		return false, nil
	}

	key := "blacklist:" + jtiStr
	_, err := rdb.Get(context.Background(), key)

	if cache.IsNil(err) {
		// 不在黑名单中
		return false, nil
	}
	if err != nil {
		// Redis 出错了，返回错误，由调用方决定是否降级
		return false, fmt.Errorf("redis error checking blacklist: %w", err)
	}
	// 存在即被拉黑
	return true, nil
}

// 将token加入黑名单
func AddTokenToBlacklist(rdb *cache.RedisCache, tokenString string, expiration time.Duration) error {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}

	if jti, ok := claims["jti"].(float64); ok {
		key := "blacklist:" + strconv.FormatInt(int64(jti), 10)
		return rdb.Set(context.Background(), key, "1", expiration)
	}
	return nil
}

func ValidateToken(cfg *config.Config, tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecretKey), nil
	})
}

func ExtractClaims(token *jwt.Token) (jwt.MapClaims, error) {
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func GetTokenHash(token string) string {
	if token == "" {
		return "empty"
	}
	hash := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", hash[:8]) // 取前8字节足够区分，又不冗长
}
