package usecase

import (
	"context"

	"github.com/ponyo877/roomchat/server/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=interface.go -destination=../mocks/mock_usecase.go -package=mocks

type Journal interface {
	Record(ctx context.Context, entry domain.PresenceEntry) error
}

type Coordinator interface {
	domain.EventHandler

	Session(id string) (domain.UserSession, bool)
	Presence() (sessions, rooms int)
}
