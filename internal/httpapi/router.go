// Package httpapi wires the REST surface: routing, middleware, request
// validation, and mapping of domain errors to HTTP status codes. All
// business logic lives in the job and company packages.
package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"joblist/api-service/internal/auth"
	"joblist/api-service/internal/company"
	"joblist/api-service/internal/job"
)

const requestIDKey = "requestId"

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(jobs *job.Service, companies *company.Service, verifier *auth.Verifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.Use(verifier.Middleware())

	r.GET("/health", health)

	api := r.Group("/api/v1")
	{
		jh := &jobHandler{svc: jobs}
		api.GET("/jobs", jh.list)
		api.GET("/jobs/:title", jh.get)
		api.POST("/jobs", auth.RequireAdmin(), jh.create)
		api.PATCH("/jobs/:title", auth.RequireAdmin(), jh.update)
		api.DELETE("/jobs/:title", auth.RequireAdmin(), jh.remove)

		ch := &companyHandler{svc: companies}
		api.GET("/companies", ch.list)
		api.GET("/companies/:handle", ch.get)
		api.POST("/companies", auth.RequireAdmin(), ch.create)
		api.PATCH("/companies/:handle", auth.RequireAdmin(), ch.update)
		api.DELETE("/companies/:handle", auth.RequireAdmin(), ch.remove)
	}

	return r
}

// requestID assigns a fresh id to each request and echoes it in the
// response for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "joblist-api"})
}
