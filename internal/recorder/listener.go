package recorder

import (
	"context"

	"voicelog/internal/models"
	"voicelog/internal/tracker"
	"voicelog/internal/voice"
)

// Listener gates presence changes before they reach the Recorder:
// untracked members and non-transitions are dropped without any remote
// work. Stateless aside from the read-only filter, so concurrent calls
// are safe.
type Listener struct {
	filter   *tracker.Filter
	recorder *Recorder
}

// NewListener creates a Listener.
func NewListener(filter *tracker.Filter, rec *Recorder) *Listener {
	return &Listener{filter: filter, recorder: rec}
}

// HandlePresenceChange processes one voice-state notification end to end.
func (l *Listener) HandlePresenceChange(ctx context.Context, pc models.PresenceChange) {
	if !l.filter.Match(pc.Member) {
		return
	}

	tr := voice.Classify(pc.BeforeChannel, pc.AfterChannel)
	if tr.Kind == voice.KindIgnored {
		return
	}

	l.recorder.Record(ctx, pc.Member, tr)
}
