package api

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bloodlink/bloodlink-api/lifecycle"
	"github.com/bloodlink/bloodlink-api/logmodule"
	"github.com/bloodlink/bloodlink-api/schema"
	"github.com/bloodlink/bloodlink-api/store"
	"github.com/bloodlink/bloodlink-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")

	// report binding failures with the json names clients send
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.BloodLinkCore
	mongoStore store.MongoStore

	// Blood request lifecycle
	engine *lifecycle.Engine

	// Task queue, optional
	background TaskSender

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// limiter for the credential endpoints
	authLimiter *ipRateLimiter

	clock utils.Clock
}

// NewServer new instance of server
func NewServer(
	core store.BloodLinkCore,
	mongoStore store.MongoStore,
	engine *lifecycle.Engine,
	background TaskSender,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         core,
		mongoStore:    mongoStore,
		engine:        engine,
		background:    background,
		jwtPrivateKey: jwtKey,
		authLimiter:   newIPRateLimiter(viper.GetFloat64("auth.rate"), viper.GetInt("auth.burst")),
		clock:         utils.SystemClock,
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
	r.Use(cors.New(corsConfig()))
	r.Use(requestMetrics())

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.rateLimit(), s.accountRegister)
		authRoute.POST("/login", s.rateLimit(), s.accountLogin)
	}

	authRoute.Use(s.authMiddleware(), s.recognizeAccountMiddleware())
	{
		authRoute.GET("/me", s.accountDetail)
		authRoute.PUT("/profile", s.accountUpdateProfile)
		authRoute.GET("/donors", s.requireRoles(schema.RequesterRoles...), s.listDonors)
	}

	bloodRequestRoute := apiRoute.Group("/blood-requests")
	{
		bloodRequestRoute.GET("", s.listBloodRequests)
		bloodRequestRoute.GET("/emergency", s.listEmergencyBloodRequests)
	}

	bloodRequestRoute.Use(s.authMiddleware())
	{
		bloodRequestRoute.POST("", s.requireRoles(schema.RequesterRoles...), s.createBloodRequest)
		bloodRequestRoute.GET("/my-requests", s.myBloodRequests)
		bloodRequestRoute.POST("/:requestID/respond", s.requireRoles(schema.RoleDonor), s.respondBloodRequest)
		bloodRequestRoute.POST("/:requestID/donor/:donorID/manage", s.requireRoles(schema.RequesterRoles...), s.manageDonorResponse)
		bloodRequestRoute.PATCH("/:requestID/status", s.requireRoles(schema.RequesterRoles...), s.updateBloodRequestStatus)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		adminRoute.POST("/expire-requests", s.adminExpireRequests)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", metricsHandler())
	}

	r.GET("/healthz", s.healthz)

	return r
}

func corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", logmodule.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := viper.GetStringSlice("cors.origins"); len(origins) > 0 {
		config.AllowOrigins = origins
	} else {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}

	return config
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

	log.Error(err)
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

// abortWithLifecycleError maps an error from the lifecycle engine or the
// stores to its status code and error object
func abortWithLifecycleError(c *gin.Context, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		abortWithEncoding(c, http.StatusBadRequest, errorValidation(verr), err)
	case errors.Is(err, lifecycle.ErrRoleNotAllowed):
		abortWithEncoding(c, http.StatusForbidden, errorRoleNotAllowed, err)
	case errors.Is(err, store.ErrNotRequester):
		abortWithEncoding(c, http.StatusForbidden, errorNotRequester, err)
	case errors.Is(err, store.ErrBloodRequestNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorBloodRequestNotFound, err)
	case errors.Is(err, store.ErrDonorResponseNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorDonorResponseNotFound, err)
	default:
		shouldInterupt(err, c)
	}
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
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
			"bloodGroups":      schema.BloodGroups,
			"urgencies":        schema.Urgencies,
			"requestStatuses":  schema.RequestStatuses,
			"responseStatuses": schema.ResponseStatuses,
			"roles":            schema.Roles,
			"listLimit":        schema.DefaultListLimit,
			"emergencyLimit":   schema.EmergencyListLimit,
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, localize(c, obj))
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
