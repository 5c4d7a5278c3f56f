package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/fincovid/chart"
	"github.com/bitmark-inc/fincovid/logmodule"
	"github.com/bitmark-inc/fincovid/pipeline"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// fetch and aggregate, once per request
	runner pipeline.Runner

	// static chart texts
	labels chart.Labels
}

// NewServer new instance of server
func NewServer(runner pipeline.Runner, labels chart.Labels) *Server {
	return &Server{
		runner: runner,
		labels: labels,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	pageRoute := r.Group("/")
	pageRoute.Use(logmodule.Ginrus("Page"))
	{
		pageRoute.GET("", s.chartPage)
		pageRoute.GET("/charts", s.chartPage)
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(corsConfig()))
	{
		apiRoute.GET("/information", s.information)
		apiRoute.GET("/aggregate", s.aggregate)
		apiRoute.GET("/charts", s.chartDefinitions)
	}

	r.GET("/healthz", s.healthz)

	return r
}

func corsConfig() cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	origins := viper.GetString("server.cors.origins")
	if origins == "" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = strings.Split(origins, ",")
	}

	return c
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)

	var fetchErr *pipeline.FetchError
	if errors.As(err, &fetchErr) {
		abortWithEncoding(c, http.StatusBadGateway, errorFetchCoronaData, err)
		return true
	}

	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"source": viper.GetString("source.url"),
			"charts": chart.IDs,
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
