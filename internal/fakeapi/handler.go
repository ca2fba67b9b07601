package fakeapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/devshowcase/internal/logging"
	"github.com/gin-gonic/gin"
)

// Handler serves the showcase API from a Data instance.
type Handler struct {
	data   *Data
	secret []byte
	ttl    time.Duration
	logger logging.Logger
}

func NewHandler(data *Data, secret []byte, ttl time.Duration, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handler{data: data, secret: secret, ttl: ttl, logger: logger}
}

// Register attaches every route to r. API routes live under /api, uploaded
// files under /uploads.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	protected := h.authRequired()

	a := api.Group("/auth")
	a.POST("/register", h.register)
	a.POST("/login", h.login)
	a.GET("/profile", protected, h.profile)
	a.PUT("/profile", protected, h.updateProfile)
	a.PUT("/avatar", protected, h.updateAvatar)

	p := api.Group("/projects")
	p.GET("", h.listProjects)
	p.GET("/user/:userId", h.listUserProjects)
	p.GET("/:id", h.getProject)
	p.POST("", protected, h.createProject)
	p.PUT("/:id", protected, h.updateProject)
	p.DELETE("/:id", protected, h.deleteProject)

	u := api.Group("/users")
	u.GET("", h.listUsers)
	u.GET("/id/:id", h.getUser)
	u.GET("/username/:username", h.getUserByUsername)

	cm := api.Group("/comments")
	cm.GET("/project/:projectId", h.listComments)
	cm.POST("", protected, h.createComment)
	cm.PUT("/:id", protected, h.updateComment)
	cm.DELETE("/:id", protected, h.deleteComment)

	r.GET("/uploads/:name", h.getUpload)
}

// NewRouter builds a gin engine with the request logger, panic recovery and
// every route.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.logger))
	r.NoRoute(func(c *gin.Context) { fail(c, http.StatusNotFound, "Route not found") })
	h.Register(r)
	return r
}
