package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// ValidateRequiredString validates required string fields
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidatePositiveInteger validates that an integer value is positive
func ValidatePositiveInteger(value int, fieldName string) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}
	return nil
}

// ValidatePositiveFloat validates that a float value is positive
func ValidatePositiveFloat(value float64, fieldName string) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}
	return nil
}

// ParseID parses a numeric path parameter
func ParseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// ParseSkipLimit reads the skip/limit query parameters, defaulting to 0/100.
// Out-of-range values (skip < 0, limit outside [1, 1000]) are rejected.
func ParseSkipLimit(c echo.Context) (int, int, error) {
	skip := 0
	limit := defaultListLimit

	if skipParam := c.QueryParam("skip"); skipParam != "" {
		s, err := strconv.Atoi(skipParam)
		if err != nil || s < 0 {
			return 0, 0, fmt.Errorf("skip must be a non-negative integer")
		}
		skip = s
	}
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		l, err := strconv.Atoi(limitParam)
		if err != nil || l < 1 || l > maxListLimit {
			return 0, 0, fmt.Errorf("limit must be between 1 and %d", maxListLimit)
		}
		limit = l
	}
	return skip, limit, nil
}
