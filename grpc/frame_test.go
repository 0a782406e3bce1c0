package relaypb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

type chatLine struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

func TestMarshalFrame(t *testing.T) {
	req := require.New(t)

	b, err := MarshalFrame("message", chatLine{Name: "Alice", Text: "hi"})

	req.NoError(err)
	req.JSONEq(`{"event":"message","data":{"name":"Alice","text":"hi"}}`, string(b))
}

func TestMarshalFrame_EmptyListStaysAList(t *testing.T) {
	req := require.New(t)

	b, err := MarshalFrame("roomList", map[string][]string{"rooms": {}})

	req.NoError(err)
	req.JSONEq(`{"event":"roomList","data":{"rooms":[]}}`, string(b))
}

func TestEncodeFrame_ThenDecode(t *testing.T) {
	req := require.New(t)

	// Given a frame built for the stream
	s, err := EncodeFrame("activity", "Alice")
	req.NoError(err)
	req.Equal("activity", s.GetFields()["event"].GetStringValue())

	// When it is read back
	f, err := DecodeFrame(s)
	req.NoError(err)

	// Then the payload decodes to the original value
	var name string
	req.NoError(f.Decode(&name))
	req.Equal("activity", f.Event)
	req.Equal("Alice", name)
}

func TestDecodeFrame_FromClientStruct(t *testing.T) {
	req := require.New(t)
	s, err := structpb.NewStruct(map[string]any{
		"event": "enterRoom",
		"data":  map[string]any{"name": "Bob", "room": "lobby"},
	})
	req.NoError(err)

	f, err := DecodeFrame(s)
	req.NoError(err)

	var payload struct {
		Name string `json:"name"`
		Room string `json:"room"`
	}
	req.NoError(f.Decode(&payload))
	req.Equal("Bob", payload.Name)
	req.Equal("lobby", payload.Room)
}

func TestFrame_DecodeWithoutData(t *testing.T) {
	req := require.New(t)

	f, err := UnmarshalFrame([]byte(`{"event":"message"}`))
	req.NoError(err)

	var line chatLine
	req.Error(f.Decode(&line))
}

func TestUnmarshalFrame_Garbage(t *testing.T) {
	_, err := UnmarshalFrame([]byte(`not json`))
	require.Error(t, err)
}
