package stream

import (
	"github.com/katalvlaran/dungeongen/dungeon"
	"github.com/katalvlaran/dungeongen/scatter"
)

// ClientReadLimit is the message size a client must accept. Layouts are
// sent in compact form, so the largest envelope is bounded by MaxRooms;
// websocket clients default to 32 KiB and should raise their limit with
// Conn.SetReadLimit(ClientReadLimit).
const ClientReadLimit = 1 << 22

// Envelope types.
const (
	TypeStage = "stage"
	TypeDone  = "done"
	TypeError = "error"
)

// Envelope is one server-to-client message. Sequence starts at 1 and
// increases by one per message on a connection.
type Envelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// Request is the single client-to-server message that starts a run.
// Nil Rooms selects the server defaults.
type Request struct {
	Seed  int64           `json:"seed"`
	Rooms *scatter.Params `json:"rooms,omitempty"`
}

// StageEvent reports a completed stage and the layout so far, in compact
// form (dungeon.Layout.Compact).
type StageEvent struct {
	Stage  string         `json:"stage"`
	Index  int            `json:"index"`
	Layout dungeon.Layout `json:"layout"`
}

// Failure carries the message of a failed run.
type Failure struct {
	Message string `json:"message"`
}
