package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"meshconv/internal/storage"
	"meshconv/pkg/fetch"

	_ "meshconv/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

// Config carries everything the HTTP surface needs. Store may be nil, in
// which case persisted delivery is unavailable and requests asking for it
// fail.
type Config struct {
	Port         string
	FetchTimeout time.Duration
	Store        storage.ObjectStore
}

type Server struct {
	config  Config
	engine  *gin.Engine
	fetcher *fetch.Client
	store   storage.ObjectStore
}

// New godoc
// @title meshconv API
// @version 1.0
// @description An API to convert GLB 3D models to STL or OBJ
// @BasePath /
func New(config Config) *Server {
	s := &Server{
		config:  config,
		fetcher: fetch.NewClient(config.FetchTimeout),
		store:   config.Store,
	}

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", LivenessHandler)
	r.POST("/convert", s.ConvertHandler)

	s.engine = r
	return s
}

func (s *Server) Run() error {
	return s.engine.Run(fmt.Sprintf(":%s", s.config.Port))
}

// Handler exposes the underlying http.Handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"response_size\": \"%s\", \"response_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"error\": \"%s\"}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(param.BodySize)),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
