package relaypb

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Frame is the envelope every event travels in, on both transports.
type Frame struct {
	Event string          `json:"event" validate:"required,oneof=enterRoom message activity"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// MarshalFrame encodes payload under event as a JSON frame.
func MarshalFrame(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", event, err)
	}
	return json.Marshal(Frame{Event: event, Data: data})
}

// UnmarshalFrame decodes a JSON frame. The payload is left raw.
func UnmarshalFrame(b []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(b, &f); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// EncodeFrame builds the Struct form of a frame for the gRPC stream.
func EncodeFrame(event string, payload any) (*structpb.Struct, error) {
	b, err := MarshalFrame(event, payload)
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("convert %s frame: %w", event, err)
	}
	return s, nil
}

// DecodeFrame reads a frame received on the gRPC stream.
func DecodeFrame(s *structpb.Struct) (Frame, error) {
	b, err := protojson.Marshal(s)
	if err != nil {
		return Frame{}, err
	}
	return UnmarshalFrame(b)
}

// Decode unmarshals the frame payload into v.
func (f Frame) Decode(v any) error {
	if len(f.Data) == 0 {
		return fmt.Errorf("%s frame has no data", f.Event)
	}
	return json.Unmarshal(f.Data, v)
}
