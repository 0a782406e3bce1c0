package adaptor

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	pb "github.com/ponyo877/roomchat/grpc"
	"github.com/ponyo877/roomchat/server/domain"
)

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrInvalidFrame = errors.New("invalid frame")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type enterRoomPayload struct {
	Name string `json:"name"`
	Room string `json:"room" validate:"required"`
}

type messagePayload struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// DecodeInbound turns a client frame into the inbound event it stands for.
func DecodeInbound(connectionID string, f pb.Frame) (domain.Inbound, error) {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Tag() == "oneof" {
			return domain.Inbound{}, fmt.Errorf("%w: %q", ErrUnknownEvent, f.Event)
		}
		return domain.Inbound{}, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}

	switch domain.EventName(f.Event) {
	case domain.EventEnterRoom:
		var p enterRoomPayload
		if err := decodePayload(f, &p); err != nil {
			return domain.Inbound{}, err
		}
		if err := validate.Struct(p); err != nil {
			return domain.Inbound{}, fmt.Errorf("%w: %s: %v", ErrInvalidFrame, f.Event, err)
		}
		return domain.NewEnterRoom(connectionID, p.Name, p.Room), nil

	case domain.EventMessage:
		var p messagePayload
		if err := decodePayload(f, &p); err != nil {
			return domain.Inbound{}, err
		}
		return domain.NewChatMessage(connectionID, p.Name, p.Text), nil

	case domain.EventActivity:
		var name string
		if err := decodePayload(f, &name); err != nil {
			return domain.Inbound{}, err
		}
		return domain.NewActivity(connectionID, name), nil
	}
	return domain.Inbound{}, fmt.Errorf("%w: %q", ErrUnknownEvent, f.Event)
}

// DecodeMessage decodes a raw JSON frame as received on a WebSocket.
func DecodeMessage(connectionID string, b []byte) (domain.Inbound, error) {
	f, err := pb.UnmarshalFrame(b)
	if err != nil {
		return domain.Inbound{}, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	return DecodeInbound(connectionID, f)
}

func EncodeOutbound(out domain.Outbound) ([]byte, error) {
	return pb.MarshalFrame(string(out.Event), out.Payload)
}

func decodePayload(f pb.Frame, v any) error {
	if err := f.Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFrame, f.Event, err)
	}
	return nil
}
