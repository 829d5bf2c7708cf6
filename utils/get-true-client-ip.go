package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetTrueClientIP resolves the caller address behind reverse proxies. It
// prefers X-Real-IP, then the last hop of X-Forwarded-For, then gin's own
// resolution.
func GetTrueClientIP(c *gin.Context) string {
	ip := c.Request.Header.Get("X-Real-IP")
	if ip != "" {
		return ip
	}

	forwardedFor := c.Request.Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			lastIP := strings.TrimSpace(ips[len(ips)-1])
			if lastIP != "" {
				return lastIP
			}
		}
	}

	return c.ClientIP()
}
