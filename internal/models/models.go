package models

// Member identifies the user behind a presence change, as delivered by
// the gateway. Read-only from this program's point of view.
type Member struct {
	DisplayName string
	Username    string
}

// PresenceChange is one voice-state notification reduced to the fields
// this program cares about. Channel names are empty when the member was
// not in a voice channel on that side of the change.
type PresenceChange struct {
	Member        Member
	BeforeChannel string
	AfterChannel  string
}

// LogRow is the 5-column record appended to the spreadsheet. Exactly one
// of LoginTime/LogoutTime is non-empty.
type LogRow struct {
	Date        string
	DisplayName string
	LoginTime   string
	LogoutTime  string
	Channel     string
}

// Values returns the row in spreadsheet column order.
func (r LogRow) Values() []interface{} {
	return []interface{}{r.Date, r.DisplayName, r.LoginTime, r.LogoutTime, r.Channel}
}

// Valid reports whether the row satisfies the one-of login/logout shape.
func (r LogRow) Valid() bool {
	return (r.LoginTime == "") != (r.LogoutTime == "")
}
