package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateOrderNumber builds a globally unique order id with an embedded
// creation timestamp and a random suffix, e.g. ORDER-1756500000-9F3A2C.
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("ORDER-%d-%s", time.Now().Unix(), suffix)
}

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if role == nil {
		return ""
	}
	return role.(string)
}

func GetUserID(c *gin.Context) *uint {
	if value, exists := c.Get("user_id"); exists {
		if id, ok := value.(uint); ok {
			return &id
		}
	}
	return nil
}
