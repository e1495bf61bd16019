package httpserver

import (
	"context"
	"time"

	"github.com/adelacruz/campus-api/internal/events"
	"github.com/adelacruz/campus-api/pkg/logging"
	"github.com/labstack/echo/v4"
)

// Publisher sends domain events without ever failing the request.
// A zero Publisher (nil producer) drops everything.
type Publisher struct {
	Producer *events.Producer
}

func (p Publisher) publish(c echo.Context, topic, key string, event map[string]any) {
	if p.Producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := p.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed",
			"topic", topic, "error", err)
	}
}
