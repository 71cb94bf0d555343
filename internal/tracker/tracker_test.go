package tracker

import (
	"testing"

	"voicelog/internal/models"
)

func TestMatchExactDisplayName(t *testing.T) {
	f := New([]string{"David Perres", "Billy Gale"})

	if !f.Match(models.Member{DisplayName: "David Perres", Username: "dperres"}) {
		t.Fatal("expected display name match")
	}
}

func TestMatchExactUsername(t *testing.T) {
	f := New([]string{"dperres"})

	if !f.Match(models.Member{DisplayName: "Dave", Username: "dperres"}) {
		t.Fatal("expected username match")
	}
}

func TestMatchCaseAndWhitespaceInsensitive(t *testing.T) {
	f := New([]string{"  david PERRES  "})

	if !f.Match(models.Member{DisplayName: "David Perres"}) {
		t.Fatal("expected normalized match on configured entry")
	}

	f = New([]string{"Billy Gale"})
	if !f.Match(models.Member{DisplayName: " billy gale "}) {
		t.Fatal("expected normalized match on incoming identity")
	}
}

func TestMatchNoSubstring(t *testing.T) {
	f := New([]string{"David Perres"})

	if f.Match(models.Member{DisplayName: "David"}) {
		t.Fatal("partial name must not match")
	}
	if f.Match(models.Member{DisplayName: "David Perres Jr"}) {
		t.Fatal("superstring must not match")
	}
}

func TestEmptyListRejectsEveryone(t *testing.T) {
	f := New(nil)

	if f.Match(models.Member{DisplayName: "Anyone", Username: "anyone"}) {
		t.Fatal("empty allow-list must reject all members")
	}
}

func TestUntrackedMemberRejected(t *testing.T) {
	f := New([]string{"David Perres"})

	if f.Match(models.Member{DisplayName: "Random Guest", Username: "guest42"}) {
		t.Fatal("untracked member must be rejected")
	}
}
