package petcode

// StatePair is a (state id, resist percent) input to NewStateResist.
type StatePair struct {
	StateID int32
	Percent int32
}

// NewStateResist builds a ctl or weak resistance list.
//
// Postcondition: len(result) == len(pairs) and order is preserved. Returns
// nil for no pairs.
func NewStateResist(pairs ...StatePair) []StateItem {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]StateItem, len(pairs))
	for i, p := range pairs {
		out[i] = StateItem{StateID: p.StateID, Percent: p.Percent}
	}
	return out
}

// MessageOption configures NewMessage.
type MessageOption func(*Message)

// WithSeerSet attaches the player's equips and title.
func WithSeerSet(equips []int32, titleID int32) MessageOption {
	return func(m *Message) {
		m.SeerSet = &SeerSet{Equips: cloneInts(equips), TitleID: titleID}
	}
}

// WithBattleFires attaches the active battle fires.
func WithBattleFires(fires ...BattleFire) MessageOption {
	return func(m *Message) {
		if len(fires) > 0 {
			m.BattleFires = append([]BattleFire(nil), fires...)
		}
	}
}

// NewMessage assembles a share-code message. The pets slice is copied so the
// caller may reuse it.
func NewMessage(server Server, displayMode DisplayMode, pets []Pet, opts ...MessageOption) *Message {
	m := &Message{Server: server, DisplayMode: displayMode}
	if len(pets) > 0 {
		m.Pets = append([]Pet(nil), pets...)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func cloneInts(in []int32) []int32 {
	if len(in) == 0 {
		return nil
	}
	return append([]int32(nil), in...)
}
