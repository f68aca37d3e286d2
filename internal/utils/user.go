package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// GetUserID 取 JWT 中间件写进 context 的用户 ID
func GetUserID(c *gin.Context) (uint, error) {
	uidRaw, exists := c.Get("user_id")
	if !exists {
		return 0, errors.New("not logged in")
	}

	uid, ok := uidRaw.(uint)
	if !ok {
		return 0, errors.New("invalid user id in context")
	}

	return uid, nil
}
