package adaptor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	pb "github.com/ponyo877/roomchat/grpc"
	"github.com/ponyo877/roomchat/server/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

var errRelayDone = errors.New("relay is no longer running")

type GRPCAdaptor struct {
	log        *slog.Logger
	relay      Relay
	sendBuffer int
	pb.UnimplementedRelayServer
}

func NewGRPCAdaptor(log *slog.Logger, relay Relay, sendBuffer int) *GRPCAdaptor {
	return &GRPCAdaptor{
		log:        log,
		relay:      relay,
		sendBuffer: sendBuffer,
	}
}

func (a *GRPCAdaptor) Connect(stream pb.Relay_ConnectServer) error {
	ctx := stream.Context()

	remote := "unknown"
	if p, ok := peer.FromContext(ctx); ok {
		remote = p.Addr.String()
	}

	id := uuid.NewString()
	sink := make(chan domain.Outbound, a.sendBuffer)
	if err := a.relay.Submit(ctx, domain.NewConnected(id, sink)); err != nil {
		return status.Error(codes.Unavailable, err.Error())
	}
	a.log.Debug("Stream opened", "connection", id, "remote", remote)

	sendErr := make(chan error, 1)
	go func() {
		sendErr <- a.forward(ctx, stream, sink)
	}()

	for {
		in, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.log.Debug("Client disconnected normally", "connection", id)
			} else {
				a.log.Debug("Client disconnected with error", "connection", id, "error", err)
			}
			break
		}

		frame, err := pb.DecodeFrame(in)
		if err != nil {
			a.log.Debug("Dropping frame", "connection", id, "error", fmt.Errorf("%w: %v", ErrInvalidFrame, err))
			continue
		}
		inbound, err := DecodeInbound(id, frame)
		if err != nil {
			a.log.Debug("Dropping frame", "connection", id, "error", err)
			continue
		}
		if err := a.relay.Submit(ctx, inbound); err != nil {
			break
		}
	}

	if err := a.relay.Submit(context.WithoutCancel(ctx), domain.NewDisconnected(id)); err != nil {
		a.log.Debug("Disconnect not delivered", "connection", id, "error", err)
	}

	// Send must not be called once this handler has returned.
	if err := <-sendErr; err != nil {
		a.log.Debug("Stream send stopped", "connection", id, "error", err)
	}
	return nil
}

func (a *GRPCAdaptor) forward(ctx context.Context, stream pb.Relay_ConnectServer, sink <-chan domain.Outbound) error {
	for {
		select {
		case out, ok := <-sink:
			if !ok {
				return nil
			}
			frame, err := pb.EncodeFrame(string(out.Event), out.Payload)
			if err != nil {
				a.log.Warn("Failed to encode outbound event", "event", out.Event, "error", err)
				continue
			}
			if err := stream.Send(frame); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		case <-a.relay.Done():
			return errRelayDone
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
