package httpx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrBadParam — параметр пути отсутствует или не является положительным целым.
var ErrBadParam = errors.New("bad path parameter")

// ClampInt — ограничение значения v в диапазоне [min, max].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PositiveIntParam — читает положительное целое из параметра пути (например, :id).
func PositiveIntParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadParam, name, raw)
	}
	return v, nil
}
