package voice

// Kind labels the meaning of a before/after channel pair.
type Kind int

const (
	// KindIgnored covers channel-to-channel moves and no-op updates.
	// Moving between two voice channels deliberately produces no record.
	KindIgnored Kind = iota
	KindEntered
	KindLeft
)

// Transition is a classified presence change. Channel is set only for
// Entered and Left.
type Transition struct {
	Kind    Kind
	Channel string
}

// Classify inspects the channels on either side of a voice-state update.
// Empty string means the member was not in a voice channel on that side.
func Classify(before, after string) Transition {
	switch {
	case before == "" && after != "":
		return Transition{Kind: KindEntered, Channel: after}
	case before != "" && after == "":
		return Transition{Kind: KindLeft, Channel: before}
	default:
		return Transition{Kind: KindIgnored}
	}
}
