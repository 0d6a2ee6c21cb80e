package bhindi

import (
	"jarvis-assistant/internal/gateway"
	pkgBhindi "jarvis-assistant/pkg/bhindi"
)

// Gateway exposes the bhindi REST client through the gateway interfaces.
type Gateway struct {
	client pkgBhindi.IBhindi
}

var _ gateway.Gateway = (*Gateway)(nil)

func New(client pkgBhindi.IBhindi) *Gateway {
	return &Gateway{client: client}
}
