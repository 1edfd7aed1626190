package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/attendance"
	"schoolportal/internal/auth"
	"schoolportal/internal/material"
	"schoolportal/internal/store"
	"schoolportal/internal/uploads"
	"schoolportal/internal/user"
)

// Handler exposes the REST API over the stores and services.
type Handler struct {
	users      *user.Repository
	materials  *material.Service
	attendance *attendance.Service
	files      *uploads.Store
	db         *store.DB
	redis      *store.Redis

	signingKey string
	issuer     string
	tokenTTL   time.Duration
}

// New wires a handler.
func New(
	users *user.Repository,
	materials *material.Service,
	att *attendance.Service,
	files *uploads.Store,
	db *store.DB,
	redis *store.Redis,
	signingKey, issuer string,
	tokenTTL time.Duration,
) *Handler {
	return &Handler{
		users:      users,
		materials:  materials,
		attendance: att,
		files:      files,
		db:         db,
		redis:      redis,
		signingKey: signingKey,
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}
}

// Mount registers all API routes on the engine.
func (h *Handler) Mount(r *gin.Engine) {
	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	api.POST("/login", h.Login)

	authed := api.Group("", auth.RequireAuth(h.signingKey, h.issuer))
	authed.GET("/me", h.Me)
	authed.GET("/materials", h.ListMaterials)
	authed.GET("/attendance", h.ListAttendance)

	staff := authed.Group("", auth.RequireStaff())
	staff.POST("/materials", h.CreateMaterial)
	staff.DELETE("/materials/:id", h.DeleteMaterial)
	staff.GET("/students", h.ListStudents)

	students := authed.Group("", auth.RequireStudent())
	students.POST("/attendance", h.SubmitAttendance)
	students.GET("/attendance/today", h.AttendanceToday)
}

// Healthz reports db and redis reachability.
func (h *Handler) Healthz(c *gin.Context) {
	ctx := c.Request.Context()
	dbHealthy := h.db != nil && h.db.PingContext(ctx) == nil
	redisHealthy := h.redis.Healthy(ctx)
	status := http.StatusOK
	if !dbHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": "ok", "db": dbHealthy, "redis": redisHealthy})
}

// ListStudents returns every student account, ordered by class then name.
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.users.ListStudents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	out := make([]gin.H, 0, len(students))
	for _, s := range students {
		out = append(out, gin.H{
			"id":       s.ID,
			"username": s.Username,
			"name":     s.Name,
			"class":    s.Class,
		})
	}
	c.JSON(http.StatusOK, out)
}
