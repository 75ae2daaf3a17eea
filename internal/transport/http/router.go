package httptransport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"krishi-officer-go/internal/platform/config"
	"krishi-officer-go/internal/platform/errors"
	"krishi-officer-go/internal/platform/logging"
)

// Options configures the HTTP router builder.
type Options struct {
	Config *config.Config
	Logger *logging.Logger
}

// Router bundles together the gin engine and common route groups.
type Router struct {
	Engine *gin.Engine
	API    *gin.RouterGroup
}

// Build constructs a gin engine pre-configured with recovery, request-id and
// logging middlewares, a body size cap, CORS and static file serving.
func Build(opts Options) (*Router, error) {
	if opts.Config == nil {
		return nil, errors.New(errors.KindTransport, "router.build", "http router requires config")
	}
	logger := opts.Logger
	if logger == nil {
		return nil, errors.New(errors.KindTransport, "router.build", "http router requires logger")
	}

	if opts.Config.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(loggingMiddleware(logger))
	engine.Use(bodyLimitMiddleware(opts.Config.Web.MaxBodySize))

	_ = engine.SetTrustedProxies([]string{"0.0.0.0"})

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	staticRoot := opts.Config.Web.StaticDir
	if staticRoot == "" {
		staticRoot = "./web"
	}
	engine.Use(static.Serve("/", static.LocalFile(staticRoot, true)))

	api := engine.Group("/api")

	return &Router{
		Engine: engine,
		API:    api,
	}, nil
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func loggingMiddleware(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		logger.Info(
			"[HTTP] %s %s -> %d (%s)",
			c.Request.Method,
			c.Request.URL.Path,
			status,
			duration,
		)
	}
}

// bodyLimitMiddleware caps request bodies. Oversized uploads surface as an
// explicit 413 during multipart parsing.
func bodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = 16 << 20
	}
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
