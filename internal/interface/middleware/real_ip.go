package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

var realIPHeaders = []string{"CF-Connecting-IP", "X-Real-IP"}

// RealIP stores the client IP under "real_ip". A parseable CF-Connecting-IP
// or X-Real-IP wins, then the left-most X-Forwarded-For entry, then gin's
// ClientIP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", clientIP(c))
		c.Next()
	}
}

func clientIP(c *gin.Context) string {
	for _, h := range realIPHeaders {
		if ip := net.ParseIP(strings.TrimSpace(c.GetHeader(h))); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
