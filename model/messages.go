package model

// ClientMessage is one player input, gob-encoded over the websocket.
type ClientMessage struct {
	Action Action
	Reset  bool
}

// ServerMessage is the per-step state push back to the client. It is a
// flattened Snapshot so the client needs no knowledge of grid internals.
type ServerMessage struct {
	GameID   string
	Level    int
	Status   Status
	Cols     int
	Rows     int
	Cells    [][]int
	Cursor   Pos
	Mirror   *Pos
	Selected int
	Bridges  []Pos
	Steps    int
	Changed  bool
}

// MessageFrom flattens a snapshot for the wire.
func MessageFrom(gameID string, snap Snapshot, status Status, changed bool) ServerMessage {
	return ServerMessage{
		GameID:   gameID,
		Level:    snap.Level,
		Status:   status,
		Cols:     snap.Grid.W,
		Rows:     snap.Grid.H,
		Cells:    snap.Grid.Cells,
		Cursor:   snap.Cursor,
		Mirror:   snap.Mirror,
		Selected: snap.Selected,
		Bridges:  snap.Bridges,
		Steps:    snap.Steps,
		Changed:  changed,
	}
}
