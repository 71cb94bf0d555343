package sheets

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"voicelog/internal/models"
)

// callTimeout caps every authentication and append round-trip so a hung
// remote call cannot stall the event handler indefinitely.
const callTimeout = 30 * time.Second

// Appender is an authenticated handle bound to one worksheet.
type Appender interface {
	Append(ctx context.Context, row models.LogRow) error
}

// Opener produces a fresh Appender per call. Re-authenticating on every
// write means a handle gone stale after transient network loss is never
// reused; callers treat an Open failure as "no handle", log it and move on.
type Opener interface {
	Open(ctx context.Context) (Appender, error)
}

// Config locates the target worksheet and carries the encoded
// service-account credentials.
type Config struct {
	SpreadsheetID     string
	CredentialsBase64 string
	SheetName         string
}

// SheetOpener implements Opener against the Google Sheets API.
type SheetOpener struct {
	cfg Config
}

// NewOpener creates a SheetOpener. Construction never fails; missing or
// malformed configuration surfaces when Open is called.
func NewOpener(cfg Config) *SheetOpener {
	return &SheetOpener{cfg: cfg}
}

// Open decodes the credentials, authenticates, and verifies the target
// worksheet exists. Any failure yields no handle.
func (o *SheetOpener) Open(ctx context.Context) (Appender, error) {
	if o.cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id not configured")
	}

	creds, err := decodeCredentials(o.cfg.CredentialsBase64)
	if err != nil {
		return nil, err
	}

	// The service keeps the handle's token source alive, so it gets the
	// caller's context; only the round-trips below carry the timeout.
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("authenticate sheets service: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	spreadsheet, err := svc.Spreadsheets.Get(o.cfg.SpreadsheetID).
		Fields("sheets.properties.title").Context(callCtx).Do()
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", o.cfg.SpreadsheetID, err)
	}

	found := false
	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.Title == o.cfg.SheetName {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("worksheet %q not found in spreadsheet %s", o.cfg.SheetName, o.cfg.SpreadsheetID)
	}

	return &worksheet{
		svc:           svc,
		spreadsheetID: o.cfg.SpreadsheetID,
		sheetName:     o.cfg.SheetName,
	}, nil
}

// decodeCredentials unpacks the base64-encoded service-account JSON blob.
func decodeCredentials(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, fmt.Errorf("service account credentials not configured")
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode service account base64: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("service account blob is not valid JSON")
	}
	return raw, nil
}

// worksheet is an Appender bound to one named sheet.
type worksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// Append adds the row as the new last row of the worksheet. A nil return
// means the remote service acknowledged the write.
func (w *worksheet) Append(ctx context.Context, row models.LogRow) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	values := &sheets.ValueRange{Values: [][]interface{}{row.Values()}}
	_, err := w.svc.Spreadsheets.Values.Append(w.spreadsheetID, appendRange(w.sheetName), values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row to %s: %w", w.sheetName, err)
	}
	return nil
}

func appendRange(sheetName string) string {
	return fmt.Sprintf("%s!A:E", sheetName)
}
