package database

import (
	"fmt"

	"github.com/google/uuid"

	"voicelog/internal/models"
)

// Event is one recorded voice event as stored in the history table.
type Event struct {
	ID          string
	Date        string
	DisplayName string
	LoginTime   string
	LogoutTime  string
	Channel     string
}

// Repository handles database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// InsertEvent appends one emitted row to the history table. Rows are
// append-only; nothing in this program updates or deletes them.
func (r *Repository) InsertEvent(row models.LogRow) error {
	_, err := r.db.conn.Exec(`
		INSERT INTO voice_events (id, event_date, display_name, login_time, logout_time, channel_name)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), row.Date, row.DisplayName, row.LoginTime, row.LogoutTime, row.Channel)
	if err != nil {
		return fmt.Errorf("failed to insert voice event: %w", err)
	}
	return nil
}

// RecentEvents returns the most recently recorded events, newest first.
func (r *Repository) RecentEvents(limit int) ([]Event, error) {
	rows, err := r.db.conn.Query(`
		SELECT id, event_date, display_name, login_time, logout_time, channel_name
		FROM voice_events ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query voice events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Date, &e.DisplayName, &e.LoginTime, &e.LogoutTime, &e.Channel); err != nil {
			return nil, fmt.Errorf("failed to scan voice event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read voice events: %w", err)
	}

	return events, nil
}
