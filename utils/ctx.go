package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the user id the auth middleware stored in the
// context. Zero means no authenticated user.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case float64: // claims decoded straight from JSON
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) string {
	return c.GetString("role")
}
