package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/helpledger/ledger"
	"github.com/bitmark-inc/helpledger/logmodule"
	"github.com/bitmark-inc/helpledger/metrics"
	"github.com/bitmark-inc/helpledger/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Ledger
	ledger ledger.LedgerCore

	// Event journal, nil when the journal is disabled
	journal store.EventJournal

	// JWT public key of the token issuer
	jwtPublicKey *rsa.PublicKey
}

// NewServer new instance of server
func NewServer(
	core ledger.LedgerCore,
	journal store.EventJournal,
	jwtKey *rsa.PublicKey) *Server {
	return &Server{
		ledger:       core,
		journal:      journal,
		jwtPublicKey: jwtKey,
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

func publicCORS(methods ...string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowMethods:     methods,
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	})
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	publicRoute := apiRoute.Group("")
	publicRoute.Use(publicCORS("GET"))
	{
		publicRoute.GET("/information", s.information)
		publicRoute.GET("/costs", s.getCosts)
		publicRoute.GET("/stats", s.getStats)
	}

	// api route other than the public ones will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	meRoute := accountRoute.Group("/me")
	meRoute.Use(s.recognizeAccountMiddleware())
	{
		meRoute.GET("", s.accountDetail)
		meRoute.GET("/helps", s.accountHelps)
		meRoute.GET("/reviews", s.accountReviews)
		meRoute.GET("/events", s.accountEvents)
	}

	profileRoute := apiRoute.Group("/profiles")
	{
		profileRoute.GET("/:identity", s.profileDetail)
		profileRoute.GET("/:identity/reviews", s.profileReviews)
	}

	helpRoute := apiRoute.Group("/helps")
	{
		helpRoute.POST("", s.askForHelp)
		helpRoute.GET("", s.openHelps)
		helpRoute.GET("/:helpID", s.helpDetail)
		helpRoute.PATCH("/:helpID", s.answerHelp)
		helpRoute.POST("/:helpID/complete", s.completeHelp)
		helpRoute.POST("/:helpID/reviews", s.reviewHelp)
		helpRoute.GET("/:helpID/reviews", s.helpReviews)
		helpRoute.GET("/:helpID/events", s.helpEvents)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/events/:identity", s.adminAccountEvents)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(publicCORS("GET"))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", gin.WrapH(metrics.Handler()))
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	abortWithLedgerError(c, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.ledger.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if s.journal != nil {
		if shouldInterupt(s.journal.Ping(), c) {
			return
		}
	}

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
			"journal":        s.journal != nil,
			"system_version": "HelpLedger 0.1",
			"docs":           viper.GetStringMap("docs"),
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
