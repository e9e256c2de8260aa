package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the auth context is missing or invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext extracts the authenticated user ID
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	value := c.Get("user_id")
	if value == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

// getOrganizationIDFromContext extracts the caller's organization. Every
// resource route is scoped by it.
func getOrganizationIDFromContext(c echo.Context) (uuid.UUID, error) {
	value := c.Get("organization_id")
	if value == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	orgID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}
	return orgID, nil
}

// getIsAdminFromContext reports whether the caller has the admin role
func getIsAdminFromContext(c echo.Context) bool {
	value := c.Get("is_admin")
	if value == nil {
		return false
	}

	isAdmin, ok := value.(bool)
	if !ok {
		return false
	}
	return isAdmin
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}
	return value
}

// parseIDParam parses a UUID path parameter
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// clampPagination keeps offset/limit inside sane bounds
func clampPagination(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return offset, limit
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
