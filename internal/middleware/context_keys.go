package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the Gin
// context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		userIDVal = c.Request.Context().Value(userIDKey)
		if userIDVal == nil {
			return 0, false
		}
	}

	switch v := userIDVal.(type) {
	case int64:
		return v, true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}
