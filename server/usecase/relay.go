package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ponyo877/roomchat/server/domain"
)

const journalTimeout = time.Second

var ErrRelayStopped = errors.New("relay stopped")

type statsRequest struct {
	reply chan domain.Stats
}

// Relay is the single owner of presence state. Each inbound event is read,
// applied and fanned out on the Run goroutine before the next one is taken,
// so every membership list reflects the state right after its mutation.
type Relay struct {
	log           *slog.Logger
	coordinator   Coordinator
	hub           domain.Broadcaster
	journal       Journal
	inbox         chan domain.Inbound
	stats         chan statsRequest
	done          chan struct{}
	now           func() time.Time
	startTime     time.Time
	totalMessages int64
}

// NewRelay creates a relay. journal may be nil.
func NewRelay(log *slog.Logger, coordinator Coordinator, hub domain.Broadcaster, journal Journal, inboxSize int) *Relay {
	return &Relay{
		log:         log,
		coordinator: coordinator,
		hub:         hub,
		journal:     journal,
		inbox:       make(chan domain.Inbound, inboxSize),
		stats:       make(chan statsRequest),
		done:        make(chan struct{}),
		now:         time.Now,
		startTime:   time.Now(),
	}
}

// Run processes inbound events until ctx is done. It must be called once.
func (r *Relay) Run(ctx context.Context) error {
	defer close(r.done)
	r.log.Info("Relay started")

	for {
		select {
		case <-ctx.Done():
			r.log.Info("Relay stopped")
			return nil
		case in := <-r.inbox:
			r.handle(ctx, in)
		case req := <-r.stats:
			req.reply <- r.snapshot()
		}
	}
}

// Submit queues an inbound event for the relay loop
func (r *Relay) Submit(ctx context.Context, in domain.Inbound) error {
	select {
	case r.inbox <- in:
		return nil
	case <-r.done:
		return ErrRelayStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once Run has returned
func (r *Relay) Done() <-chan struct{} {
	return r.done
}

// Stats returns relay statistics, computed on the relay loop
func (r *Relay) Stats(ctx context.Context) (domain.Stats, error) {
	req := statsRequest{reply: make(chan domain.Stats, 1)}
	select {
	case r.stats <- req:
	case <-r.done:
		return domain.Stats{}, ErrRelayStopped
	case <-ctx.Done():
		return domain.Stats{}, ctx.Err()
	}

	select {
	case stats := <-req.reply:
		return stats, nil
	case <-ctx.Done():
		return domain.Stats{}, ctx.Err()
	}
}

func (r *Relay) handle(ctx context.Context, in domain.Inbound) {
	if !in.IsValid() {
		r.log.Debug("Dropping invalid inbound event", "event", in.String())
		return
	}

	var notifications []domain.Notification
	switch in.Kind {
	case domain.InboundConnected:
		r.log.Info("Connection opened", "connection", in.ConnectionID)
		r.hub.Register(in.ConnectionID, in.Sink)
		notifications = r.coordinator.Connect(in.ConnectionID)
		r.record(ctx, domain.NewPresenceEntry(in.ConnectionID, domain.PresenceConnected, "", "", r.now()))

	case domain.InboundEnterRoom:
		notifications = r.coordinator.EnterRoom(in.ConnectionID, domain.EnterRoomRequest{Name: in.Name, Room: in.Room})
		r.hub.Subscribe(in.ConnectionID, in.Room)
		r.record(ctx, domain.NewPresenceEntry(in.ConnectionID, domain.PresenceEntered, in.Name, in.Room, r.now()))

	case domain.InboundChatMessage:
		notifications = r.coordinator.Message(in.ConnectionID, domain.ChatMessageRequest{Name: in.Name, Text: in.Text})
		if len(notifications) > 0 {
			r.totalMessages++
		}

	case domain.InboundActivity:
		notifications = r.coordinator.Activity(in.ConnectionID, in.Name)

	case domain.InboundDisconnected:
		session, _ := r.coordinator.Session(in.ConnectionID)
		notifications = r.coordinator.Disconnect(in.ConnectionID)
		r.hub.Unregister(in.ConnectionID)
		r.record(ctx, domain.NewPresenceEntry(in.ConnectionID, domain.PresenceDisconnected, session.Name, session.Room, r.now()))
		r.log.Info("Connection closed", "connection", in.ConnectionID)
	}

	for _, n := range notifications {
		r.deliver(n)
	}
}

func (r *Relay) deliver(n domain.Notification) {
	switch n.Audience {
	case domain.AudienceConnection:
		r.hub.SendTo(n.Target, n.Event, n.Payload)
	case domain.AudienceRoom:
		r.hub.SendToRoom(n.Target, n.Except, n.Event, n.Payload)
	case domain.AudienceAll:
		r.hub.SendToAll(n.Event, n.Payload)
	default:
		r.log.Warn("Unknown notification audience", "notification", n.String())
	}
}

func (r *Relay) record(ctx context.Context, entry domain.PresenceEntry) {
	if r.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, journalTimeout)
	defer cancel()
	if err := r.journal.Record(ctx, entry); err != nil {
		r.log.Warn("Failed to record presence entry",
			"connection", entry.ConnectionID, "kind", entry.Kind, "error", err)
	}
}

func (r *Relay) snapshot() domain.Stats {
	sessions, rooms := r.coordinator.Presence()
	return domain.Stats{
		ActiveRooms:    rooms,
		ActiveSessions: sessions,
		Connections:    r.hub.ConnectionCount(),
		TotalMessages:  r.totalMessages,
		Uptime:         time.Since(r.startTime).Round(time.Second).String(),
	}
}
