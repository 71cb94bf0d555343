package recorder

import (
	"context"
	"log"

	"voicelog/internal/clock"
	"voicelog/internal/models"
	"voicelog/internal/sheets"
	"voicelog/internal/voice"
	"voicelog/pkg/utils"
)

// History is the optional durable mirror of emitted rows.
type History interface {
	InsertEvent(row models.LogRow) error
}

// Recorder turns a classified transition into a LogRow, writes the local
// log line, and attempts the remote append. No failure on the remote side
// ever propagates out of Record.
type Recorder struct {
	clock   *clock.Clock
	opener  sheets.Opener
	history History // may be nil
	logger  *log.Logger
}

// New creates a Recorder. history may be nil when no DSN is configured.
func New(c *clock.Clock, opener sheets.Opener, history History, logger *log.Logger) *Recorder {
	return &Recorder{clock: c, opener: opener, history: history, logger: logger}
}

// Record logs one qualifying transition locally and appends it to the
// remote spreadsheet. The local line is written before any remote work,
// so the event is never silently lost to a remote failure.
func (r *Recorder) Record(ctx context.Context, m models.Member, tr voice.Transition) {
	date, now := r.clock.Stamp()

	row := models.LogRow{
		Date:        date,
		DisplayName: m.DisplayName,
		Channel:     tr.Channel,
	}
	eventType := "LogIn"
	switch tr.Kind {
	case voice.KindEntered:
		row.LoginTime = now
	case voice.KindLeft:
		row.LogoutTime = now
		eventType = "LogOut"
	default:
		return
	}

	r.logger.Println(utils.FormatVoiceEvent(m.DisplayName, m.Username, eventType, tr.Channel, now))

	if r.history != nil {
		if err := r.history.InsertEvent(row); err != nil {
			r.logger.Printf("❌ history insert failed: %v", err)
		}
	}

	// Fresh handle per write: re-authenticates every time.
	handle, err := r.opener.Open(ctx)
	if err != nil {
		r.logger.Printf("❌ no spreadsheet handle: %v", err)
		return
	}
	if err := handle.Append(ctx, row); err != nil {
		r.logger.Printf("❌ spreadsheet append failed: %v", err)
		return
	}
	r.logger.Printf("✅ row written to spreadsheet: %v", row.Values())
}
