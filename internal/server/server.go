// ABOUTME: HTTP surface for the inquiry service using gin
// ABOUTME: Wires routes, CORS policy, and the SSE streaming endpoints
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sable/inquiry/internal/core"
)

// Server exposes the inquirer over HTTP
type Server struct {
	inquirer *core.Inquirer
	engine   *gin.Engine
}

// New builds the router with CORS policy and all inquiry routes
func New(inquirer *core.Inquirer, corsOrigins []string) *Server {
	s := &Server{
		inquirer: inquirer,
		engine:   gin.Default(),
	}

	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	s.engine.GET("/", s.handleRoot)
	s.engine.POST("/inquire/start", s.handleStart)
	s.engine.POST("/inquire/start/stream", s.handleStartStream)
	s.engine.POST("/inquire/continue", s.handleContinue)
	s.engine.POST("/inquire/continue/stream", s.handleContinueStream)

	return s
}

// Handler returns the underlying http.Handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP on addr until the listener fails
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
