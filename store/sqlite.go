package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"workshopapi/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys so session rows cannot dangle and workshop
	// deletion cascades to its sessions.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS workshops (
			workshop_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			date DATETIME NOT NULL,
			max_participants INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_workshops_date ON workshops(date)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			workshop_id TEXT NOT NULL,
			title TEXT NOT NULL,
			start_time DATETIME NOT NULL,
			end_time DATETIME NOT NULL,
			FOREIGN KEY (workshop_id) REFERENCES workshops(workshop_id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_workshop ON sessions(workshop_id, start_time)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateWorkshop inserts a new workshop.
func (s *SQLiteStore) CreateWorkshop(ctx context.Context, workshop *domain.Workshop) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workshops (workshop_id, title, description, date, max_participants) VALUES (?, ?, ?, ?, ?)`,
		workshop.ID, workshop.Title, workshop.Description, workshop.Date.UTC(), workshop.MaxParticipants)
	return err
}

// GetWorkshop retrieves a workshop by ID.
func (s *SQLiteStore) GetWorkshop(ctx context.Context, workshopID string) (*domain.Workshop, error) {
	var workshop domain.Workshop
	err := s.db.QueryRowContext(ctx,
		`SELECT workshop_id, title, description, date, max_participants FROM workshops WHERE workshop_id = ?`,
		workshopID).Scan(&workshop.ID, &workshop.Title, &workshop.Description, &workshop.Date, &workshop.MaxParticipants)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workshop, nil
}

// ListWorkshops retrieves workshops ordered by date ascending. A non-blank
// search term filters on a case-insensitive title substring match.
func (s *SQLiteStore) ListWorkshops(ctx context.Context, search string) ([]domain.Workshop, error) {
	query := `SELECT workshop_id, title, description, date, max_participants FROM workshops`
	args := []interface{}{}

	if search != "" {
		query += ` WHERE title LIKE ?`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY date ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workshops []domain.Workshop
	for rows.Next() {
		var workshop domain.Workshop
		if err := rows.Scan(&workshop.ID, &workshop.Title, &workshop.Description, &workshop.Date, &workshop.MaxParticipants); err != nil {
			return nil, err
		}
		workshops = append(workshops, workshop)
	}
	return workshops, rows.Err()
}

// UpdateWorkshop overwrites the mutable fields of an existing workshop.
func (s *SQLiteStore) UpdateWorkshop(ctx context.Context, workshop *domain.Workshop) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE workshops SET title = ?, description = ?, date = ?, max_participants = ? WHERE workshop_id = ?`,
		workshop.Title, workshop.Description, workshop.Date.UTC(), workshop.MaxParticipants, workshop.ID)
	return err
}

// DeleteWorkshop removes a workshop. Returns false if no row matched.
func (s *SQLiteStore) DeleteWorkshop(ctx context.Context, workshopID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM workshops WHERE workshop_id = ?`, workshopID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// WorkshopExists reports whether a workshop row exists.
func (s *SQLiteStore) WorkshopExists(ctx context.Context, workshopID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM workshops WHERE workshop_id = ?`, workshopID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateSession inserts a new session.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, workshop_id, title, start_time, end_time) VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.WorkshopID, session.Title, session.StartTime.UTC(), session.EndTime.UTC())
	return err
}

// GetSession retrieves a session by its compound key.
func (s *SQLiteStore) GetSession(ctx context.Context, workshopID, sessionID string) (*domain.Session, error) {
	var session domain.Session
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, workshop_id, title, start_time, end_time FROM sessions WHERE workshop_id = ? AND session_id = ?`,
		workshopID, sessionID).Scan(&session.ID, &session.WorkshopID, &session.Title, &session.StartTime, &session.EndTime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions retrieves all sessions for a workshop ordered by start time.
func (s *SQLiteStore) ListSessions(ctx context.Context, workshopID string) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, workshop_id, title, start_time, end_time FROM sessions WHERE workshop_id = ? ORDER BY start_time ASC`,
		workshopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var session domain.Session
		if err := rows.Scan(&session.ID, &session.WorkshopID, &session.Title, &session.StartTime, &session.EndTime); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// UpdateSession overwrites the mutable fields of an existing session.
func (s *SQLiteStore) UpdateSession(ctx context.Context, session *domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET title = ?, start_time = ?, end_time = ? WHERE workshop_id = ? AND session_id = ?`,
		session.Title, session.StartTime.UTC(), session.EndTime.UTC(), session.WorkshopID, session.ID)
	return err
}

// DeleteSession removes a session by its compound key. Returns false if no
// row matched.
func (s *SQLiteStore) DeleteSession(ctx context.Context, workshopID, sessionID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE workshop_id = ? AND session_id = ?`, workshopID, sessionID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
