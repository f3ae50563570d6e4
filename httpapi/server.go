package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/cli"
	"github.com/yekta/lambdalabs-bot/status"
)

// Server exposes the watcher's status over HTTP. It only ever reads the
// status store.
type Server struct {
	Ui     cli.Ui
	Status *status.Store
	Addr   string
}

// Start serves in a background goroutine and returns immediately.
func (s *Server) Start() error {
	r := s.Handler()
	s.Ui.Info(fmt.Sprintf("Starting HTTP API server on %q", s.Addr))
	go func() {
		if err := r.Run(s.Addr); err != nil {
			s.Ui.Error(fmt.Sprintf("HTTP API server error: %s", err))
		}
	}()

	return nil
}

func (s *Server) Handler() *gin.Engine {
	r := gin.Default()
	r.GET("/health", s.getHealthHandler)
	r.GET("/metrics", s.getMetricsHandler)
	return r
}

func (s *Server) getHealthHandler(c *gin.Context) {
	c.JSON(200, s.Status.Get())
}

func (s *Server) getMetricsHandler(c *gin.Context) {
	for k, v := range s.Status.Metrics() {
		fmt.Fprintf(c.Writer, "lambdalabs_bot_%s{} %f\n", k, v)
	}
}
