package delivery

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Zachkp/portfolio/internal/contact"
)

// Entry is a stored contact message.
type Entry struct {
	ID         int64     `json:"id"`
	FromName   string    `json:"from_name"`
	FromEmail  string    `json:"from_email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Inbox keeps contact messages in SQLite instead of mailing them.
type Inbox struct {
	db  *sql.DB
	now func() time.Time
}

// OpenInbox opens (and if needed creates) the inbox database at path.
func OpenInbox(ctx context.Context, path string) (*Inbox, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open inbox: %w", err)
	}
	// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		from_name TEXT NOT NULL,
		from_email TEXT NOT NULL,
		message TEXT NOT NULL,
		received_at DATETIME NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create messages table: %w", err)
	}
	return &Inbox{db: db, now: time.Now}, nil
}

func (in *Inbox) Close() error {
	return in.db.Close()
}

func (in *Inbox) Send(ctx context.Context, msg contact.Message) error {
	_, err := in.db.ExecContext(ctx, `
		INSERT INTO messages (from_name, from_email, message, received_at)
		VALUES (?, ?, ?, ?)
	`, msg.FromName, msg.FromEmail, msg.Message, in.now().UTC())
	if err != nil {
		return fmt.Errorf("store message: %w", err)
	}
	slog.Info("Contact message stored", "from_name", msg.FromName, "from_email", msg.FromEmail)
	return nil
}

// List returns up to limit messages, newest first. limit <= 0 means all.
func (in *Inbox) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := in.db.QueryContext(ctx, `
		SELECT id, from_name, from_email, message, received_at
		FROM messages
		ORDER BY received_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.FromName, &e.FromEmail, &e.Message, &e.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes messages received before cutoff and reports how many went.
func (in *Inbox) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := in.db.ExecContext(ctx, `DELETE FROM messages WHERE received_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune messages: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		slog.Info("Inbox cleanup removed old messages", "count", n, "cutoff", cutoff)
	}
	return n, nil
}
