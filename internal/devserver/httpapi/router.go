package httpapi

import (
	"github.com/dmitrijs2005/portal/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	BasePath string
	Service  UserService
	Log      logging.Logger

	// Optional. With a registry, requests are instrumented and /metrics is
	// served outside BasePath.
	Registry *prometheus.Registry
}

func NewRouter(opts RouterOptions) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(log))
	if opts.Registry != nil {
		r.Use(Instrument(NewMetrics(opts.Registry)))
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	h := NewHandler(opts.Service, log)
	api := r.Group(opts.BasePath)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.GET("/canRegister", h.CanRegister)

	user := api.Group("/user", Auth(opts.Service.UserIDFromToken))
	user.GET("/getUser", h.GetUser)
	user.PUT("/updateUserInfo", h.UpdateUserInfo)
	user.PATCH("/updateAvatar", h.UpdateAvatar)
	user.PATCH("/updatePassword", h.UpdatePassword)

	return r
}
