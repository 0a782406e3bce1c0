package adaptor

import (
	"context"

	"github.com/ponyo877/roomchat/server/domain"
)

type Relay interface {
	Submit(ctx context.Context, in domain.Inbound) error
	Stats(ctx context.Context) (domain.Stats, error)
	Done() <-chan struct{}
}
