package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sallepos/internal/apierror"
	"sallepos/internal/model"
	"sallepos/internal/repository"
)

const (
	EmpleadoKey  = "empleado"
	SessionIDKey = "session_id"
)

// SessionAuth validates the opaque Bearer session id on every protected route.
// The session itself lives in Redis; an expired or deleted key means the
// worker has to log in again.
func SessionAuth(sesiones repository.SesionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
			return
		}

		sessionID := strings.TrimPrefix(header, "Bearer ")
		empleado, err := sesiones.GetSesion(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesión no válida o expirada"))
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Set(EmpleadoKey, empleado)
		c.Next()
	}
}

// RequireRol rejects requests whose session role is not in the allowed list.
func RequireRol(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		empleado, ok := c.MustGet(EmpleadoKey).(*model.Empleado)
		if !ok || !allowed[empleado.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetEmpleado retrieves the authenticated worker from the Gin context.
func GetEmpleado(c *gin.Context) *model.Empleado {
	empleado, _ := c.MustGet(EmpleadoKey).(*model.Empleado)
	return empleado
}

// GetSessionID retrieves the opaque session id from the Gin context.
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
