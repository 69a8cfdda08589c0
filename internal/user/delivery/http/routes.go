package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps onboarding paths to handler methods. These live at
// the root, not under /api, because the shortcut has the paths baked in.
func RegisterRoutes(r *gin.Engine, h *handler) {
	r.POST("/verify-user", h.VerifyUser)
	r.GET("/register", h.RegisterPage)
	r.POST("/register/complete", h.RegisterComplete)
}
