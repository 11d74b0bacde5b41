package transport

import (
	"context"
)

// Transport delivers an encoded batch payload to a named endpoint.
type Transport interface {
	Send(ctx context.Context, endpoint string, payload []byte) error
}
