package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/atelierbarbier/reservation-api/internal/middleware"
)

// auditUserID pulls the authenticated admin from the context, nil on
// public routes.
func auditUserID(c *gin.Context) *string {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}

	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}

	return &s
}
