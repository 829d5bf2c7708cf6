package configs

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CorsConfig(allowedOrigins []string) gin.HandlerFunc {
	var origins = []string{}
	origins = append(origins, allowedOrigins...)

	if gin.Mode() == gin.DebugMode {
		origins = append(origins, "http://localhost:3000", "http://localhost:5000")
	}

	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowOrigins:     origins,
		AllowCredentials: true,
		MaxAge:           60 * 24 * 30,
	})
}
