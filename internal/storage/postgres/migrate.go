package postgres

import "fmt"

const createEventsTableSQL = `
CREATE TABLE IF NOT EXISTS events (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date TIMESTAMP WITH TIME ZONE NOT NULL,
    organizer_id TEXT NOT NULL,
    price REAL NOT NULL DEFAULT 0,
    max_attendees INTEGER NOT NULL CHECK (max_attendees >= 1),
    current_attendees INTEGER NOT NULL DEFAULT 0
        CHECK (current_attendees >= 0 AND current_attendees <= max_attendees),
    status TEXT NOT NULL DEFAULT 'draft',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL
);`

const createBookingsTableSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    id UUID PRIMARY KEY,
    event_id INTEGER NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    amount REAL NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'pending',
    notes TEXT NOT NULL DEFAULT '',
    booking_date TIMESTAMP WITH TIME ZONE NOT NULL,
    UNIQUE (event_id, user_id)
);`

const createNotificationsTableSQL = `
CREATE TABLE IF NOT EXISTS notifications (
    id UUID PRIMARY KEY,
    user_id TEXT NOT NULL,
    type TEXT NOT NULL,
    title TEXT NOT NULL,
    message TEXT NOT NULL,
    event_id INTEGER,
    booking_id UUID,
    read BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL
);`

// RunMigrations creates the schema if it does not exist yet. The CHECK on
// current_attendees is a last line of defense; the guarded updates in
// bookings.go are what actually keep the counter in bounds.
func (s *Storage) RunMigrations() error {
	for _, query := range []string{
		createEventsTableSQL,
		createBookingsTableSQL,
		createNotificationsTableSQL,
	} {
		if _, err := s.DB.Exec(query); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
