package handler

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultAnswerLimit = 20
	maxAnswerLimit     = 100
)

// pageParams reads limit and offset for list endpoints.
func pageParams(c *gin.Context) (limit, offset int) {
	limit = queryInt(c, "limit", defaultAnswerLimit, 1, maxAnswerLimit)
	offset = queryInt(c, "offset", 0, 0, math.MaxInt)
	return limit, offset
}

// queryInt falls back to def when the parameter is missing, malformed or
// below lo, and clamps it to hi.
func queryInt(c *gin.Context, name string, def, lo, hi int) int {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	switch {
	case err != nil:
		slog.Warn("invalid query parameter, using default", "param", name, "value", raw, "error", err)
		return def
	case v < lo:
		slog.Warn("query parameter below min, using default", "param", name, "value", v, "min", lo)
		return def
	case v > hi:
		slog.Warn("query parameter exceeds max, clamping", "param", name, "value", v, "max", hi)
		return hi
	}
	return v
}
