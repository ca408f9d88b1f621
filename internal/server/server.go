package server

import (
	"user-microservice/internal/api/controller"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	engine *gin.Engine
}

// NewServer builds the gin engine and registers all routes.
func NewServer(userController *controller.UserController, statusController *controller.StatusController) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(traceRequests())

	// A defined path with the wrong verb answers 405, not 404.
	engine.HandleMethodNotAllowed = true

	api := engine.Group("/api")
	{
		api.GET("/status", statusController.Status)

		api.GET("/users", userController.ListUsers)
		api.POST("/users", userController.CreateUser)
		api.GET("/users/:user_id", userController.GetUser)
		api.PATCH("/users/:user_id", userController.UpdateUser)
		api.DELETE("/users/:user_id", userController.DeleteUser)

		api.POST("/register", userController.Register)
	}

	return &Server{engine: engine}
}

// Engine exposes the underlying handler for the HTTP server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// requestID tags every request with an id for log correlation, keeping one
// supplied by the caller.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// traceRequests opens one span per request and records the outcome.
func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "server.handleRequest", trace.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
		))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Writer.Status()))
	}
}
