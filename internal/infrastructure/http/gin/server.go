package gin

import (
	"fmt"
	"time"

	ginlib "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oficina/internal/config"
	"oficina/pkg/logger"
)

type Server struct {
	engine *ginlib.Engine
	addr   string
}

func NewEngine(log logger.Logger) *ginlib.Engine {
	r := ginlib.New()
	r.Use(ginlib.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(log))
	return r
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine) *Server {
	return &Server{
		engine: engine,
		addr:   cfg.Address(),
	}
}

func (s *Server) Run() error {
	if s.engine == nil {
		return fmt.Errorf("gin engine is nil")
	}
	return s.engine.Run(s.addr)
}

// RequestID takes the caller's X-Request-ID or mints one, echoes it in the
// response and stores it on the request context for the logger.
func RequestID() ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)

		ctx := logger.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func AccessLog(log logger.Logger) ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		start := time.Now()
		c.Next()

		log.WithContext(c.Request.Context()).Info("http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	}
}
