package worker

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/domain"
)

var (
	ErrUnknownEvent = errors.New("unknown event kind")
	ErrInvalidEvent = errors.New("event payload missing")
)

// EventKind — фиксированный набор событий жизненного цикла.
type EventKind string

const (
	EventInstall  EventKind = "install"
	EventActivate EventKind = "activate"
	EventFetch    EventKind = "fetch"
	EventMessage  EventKind = "message"
)

// Event — событие для Dispatch; заполняется только поле, нужное его виду.
type Event struct {
	Kind     EventKind
	Manifest *domain.Manifest
	Request  *http.Request
	Message  *domain.ControlMessage
}

// Outcome — результат обработки события. Response заполняется только для EventFetch.
type Outcome struct {
	Response *http.Response
	Err      error
}

type handlerFunc func(ctx context.Context, ev Event) Outcome

func (c *Controller) routes() map[EventKind]handlerFunc {
	return map[EventKind]handlerFunc{
		EventInstall:  c.onInstall,
		EventActivate: c.onActivate,
		EventFetch:    c.onFetch,
		EventMessage:  c.onMessage,
	}
}

// Dispatch — единственная точка входа для событий воркера.
func (c *Controller) Dispatch(ctx context.Context, ev Event) Outcome {
	h, ok := c.handlers[ev.Kind]
	if !ok {
		return Outcome{Err: fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)}
	}
	return h(ctx, ev)
}
