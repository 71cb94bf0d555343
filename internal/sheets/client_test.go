package sheets

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
)

func TestOpenFailsWithoutSpreadsheetID(t *testing.T) {
	o := NewOpener(Config{SheetName: "BackLog"})

	_, err := o.Open(context.Background())
	if err == nil {
		t.Fatal("expected error without spreadsheet id")
	}
}

func TestOpenFailsOnInvalidBase64(t *testing.T) {
	o := NewOpener(Config{
		SpreadsheetID:     "abc123",
		CredentialsBase64: "%%%not-base64%%%",
		SheetName:         "BackLog",
	})

	_, err := o.Open(context.Background())
	if err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if !strings.Contains(err.Error(), "base64") {
		t.Fatalf("expected base64 decode error, got %v", err)
	}
}

func TestOpenFailsOnNonJSONCredentials(t *testing.T) {
	o := NewOpener(Config{
		SpreadsheetID:     "abc123",
		CredentialsBase64: base64.StdEncoding.EncodeToString([]byte("not json at all")),
		SheetName:         "BackLog",
	})

	_, err := o.Open(context.Background())
	if err == nil {
		t.Fatal("expected error for non-JSON credentials")
	}
	if !strings.Contains(err.Error(), "JSON") {
		t.Fatalf("expected JSON validity error, got %v", err)
	}
}

func TestOpenFailsWithoutCredentials(t *testing.T) {
	o := NewOpener(Config{SpreadsheetID: "abc123", SheetName: "BackLog"})

	_, err := o.Open(context.Background())
	if err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestDecodeCredentialsRoundTrip(t *testing.T) {
	blob := `{"type":"service_account","project_id":"p"}`
	raw, err := decodeCredentials(base64.StdEncoding.EncodeToString([]byte(blob)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw) != blob {
		t.Fatalf("expected %s, got %s", blob, raw)
	}
}

func TestAppendRange(t *testing.T) {
	if got := appendRange("BackLog"); got != "BackLog!A:E" {
		t.Fatalf("expected BackLog!A:E, got %s", got)
	}
}
