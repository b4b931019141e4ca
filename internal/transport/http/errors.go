package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Gunvolt24/storefront/internal/backend"
	"github.com/Gunvolt24/storefront/internal/intercept"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/internal/worker"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

// statusFor — HTTP-статус для ошибки usecase-слоя.
func statusFor(err error) int {
	switch {
	case errors.Is(err, httpx.ErrBadParam),
		errors.Is(err, validate.ErrInvalidOrder),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidItem),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, worker.ErrInvalidManifest),
		errors.Is(err, worker.ErrInvalidMessage),
		errors.Is(err, worker.ErrUnknownMessage):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrSubmitFailed),
		errors.Is(err, worker.ErrInstallFailed),
		errors.Is(err, backend.ErrInvalidResponse):
		return http.StatusBadGateway
	case errors.Is(err, intercept.ErrOffline):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError — JSON {"error": ...}; текст внутренних ошибок наружу не отдаём.
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch {
	case status == http.StatusInternalServerError:
		h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
		msg = "internal server error"
	case errors.Is(err, usecase.ErrSubmitFailed):
		msg = usecase.ErrSubmitFailed.Error()
	case errors.Is(err, validate.ErrInvalidOrder) && strings.Contains(msg, validate.MsgFillAllFields):
		msg = validate.MsgFillAllFields
	}
	c.JSON(status, gin.H{"error": msg})
}
