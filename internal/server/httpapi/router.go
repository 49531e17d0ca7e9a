// Package httpapi is the HTTP delivery layer: routing, auth and logging
// middleware, and thin handlers that translate between JSON payloads and the
// service operations.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"courseledger/internal/logging"
	"courseledger/internal/server/services"
)

// NewRouter wires the full /v1 API. Read endpoints are public; every
// mutating endpoint that needs a caller identity sits behind RequireAuth.
func NewRouter(log logging.Logger, svc *services.Services, secret []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(RequestLogger(log))

	courses := NewCourseHandler(log, svc.Courses)
	lessons := NewLessonHandler(log, svc.Lessons)
	certs := NewCertificateHandler(log, svc.Certificates)
	users := NewUserHandler(log, svc.Users)

	authed := RequireAuth(secret)

	v1 := r.Group("/v1")
	{
		v1.GET("/status", status)

		v1.GET("/courses/:course_id", courses.Get)
		v1.POST("/courses", authed, courses.Create)
		v1.PUT("/courses/:course_id", authed, courses.Update)
		v1.DELETE("/courses/:course_id", authed, courses.Delete)

		v1.POST("/courses/:course_id/lessons", authed, lessons.Create)
		v1.GET("/lessons/:lesson_id", lessons.Get)
		v1.PUT("/lessons/:lesson_id", authed, lessons.Update)
		v1.DELETE("/lessons/:lesson_id", authed, lessons.Delete)

		v1.GET("/certificates/:certificate_id", certs.Get)
		v1.GET("/certificates/:certificate_id/verify", certs.Verify)
		v1.POST("/certificates", authed, certs.Issue)

		v1.GET("/users/:user_id", users.Get)
		v1.POST("/users", users.Register)
		v1.DELETE("/users/:user_id", users.Delete)
	}

	return r
}

func status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
