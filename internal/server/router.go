// Package server exposes the formula catalog over HTTP with gin.
package server

import (
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/config"
	"github.com/san-kum/sonarlab/internal/observability"
	"github.com/san-kum/sonarlab/internal/storage"
	"github.com/san-kum/sonarlab/internal/sweep"
)

type Deps struct {
	Registry *catalog.Registry
	Config   *config.Config
	Store    *storage.Store
	Log      logrus.FieldLogger
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
}

// SetupRouter creates and configures the gin router.
func SetupRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(d.Log, d.Metrics))

	corsConfig := cors.DefaultConfig()
	origins := d.Config.Server.CORSOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	router.Use(cors.New(corsConfig))

	d.Metrics.RegisteredFormulas.Set(float64(d.Registry.Len()))

	handler := &Handler{
		reg:     d.Registry,
		cfg:     d.Config,
		store:   d.Store,
		runner:  sweep.NewRunner(d.Registry, d.Config.Sweep.Workers),
		log:     d.Log,
		metrics: d.Metrics,
	}

	v1 := router.Group("/v1")

	formulas := v1.Group("/formulas")
	formulas.GET("", handler.ListFormulas)
	formulas.GET("/:name", handler.GetFormula)
	formulas.POST("/:name/evaluate", handler.Evaluate)
	formulas.POST("/:name/sweep", handler.Sweep)

	v1.GET("/presets", handler.ListPresets)

	runs := v1.Group("/runs")
	runs.GET("", handler.ListRuns)
	runs.GET("/:id", handler.GetRun)

	router.GET("/health", handler.HealthCheck)

	if d.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	return router
}

func requestLogger(log logrus.FieldLogger, m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		m.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"elapsed": elapsed.String(),
		}).Debug("request")
	}
}
