package handler

import (
	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
	natspkg "github.com/pawsfam/pawhaven/internal/pkg/nats"
	"github.com/pawsfam/pawhaven/services/shipping"
	httpHandler "github.com/pawsfam/pawhaven/services/shipping/handler/http"
	natsHandler "github.com/pawsfam/pawhaven/services/shipping/handler/nats"
)

// Handler combines all handlers for the shipping service
type Handler struct {
	shippingHTTP *httpHandler.ShippingHandler
	shippingNATS *natsHandler.ShippingHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	shippingUC shipping.ShippingUC,
	natsClient *natspkg.Client,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		shippingHTTP: httpHandler.NewShippingHandler(shippingUC),
		shippingNATS: natsHandler.NewShippingHandler(shippingUC, natsClient, m),
	}
}
