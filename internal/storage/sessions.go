package storage

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/cubelab/cubesim"
)

// Session is one recorded shuffle: its generated move sequence and the
// facelet state it left the cube in.
type Session struct {
	SessionID string
	CreatedAt time.Time
	Seed      *int64 // nil when the shuffle was not seeded
	MoveCount int
	Notation  string
	Facelets  string
}

// SaveSession records a shuffle and its moves in one transaction and
// returns the new session id.
func (db *DB) SaveSession(seed *int64, moves []cubesim.Move, facelets string) (string, error) {
	id := uuid.New().String()

	err := db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO sessions (session_id, seed, move_count, notation, facelets)
			VALUES (?, ?, ?, ?, ?)
		`, id, seed, len(moves), cubesim.FormatMoves(moves), facelets)
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}

		for i, m := range moves {
			angleDeg := int(math.Round(m.Angle / cubesim.QuarterTurn * 90))
			_, err := tx.Exec(`
				INSERT INTO session_moves (session_id, seq, axis, layer, angle_deg, notation)
				VALUES (?, ?, ?, ?, ?, ?)
			`, id, i, m.Axis.String(), m.Layer, angleDeg, m.Notation())
			if err != nil {
				return fmt.Errorf("failed to insert move %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// GetSession loads a session by id.
func (db *DB) GetSession(id string) (*Session, error) {
	var s Session
	var createdAt string
	err := db.QueryRow(`
		SELECT session_id, created_at, seed, move_count, notation, facelets
		FROM sessions WHERE session_id = ?
	`, id).Scan(&s.SessionID, &createdAt, &s.Seed, &s.MoveCount, &s.Notation, &s.Facelets)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	s.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
	return &s, nil
}

// ListSessions returns the most recent sessions, newest first.
func (db *DB) ListSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT session_id, created_at, seed, move_count, notation, facelets
		FROM sessions ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var createdAt string
		if err := rows.Scan(&s.SessionID, &createdAt, &s.Seed, &s.MoveCount, &s.Notation, &s.Facelets); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetSessionMoves loads a session's moves in sequence order.
func (db *DB) GetSessionMoves(id string) ([]cubesim.Move, error) {
	rows, err := db.Query(`
		SELECT axis, layer, angle_deg FROM session_moves
		WHERE session_id = ? ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load moves for %s: %w", id, err)
	}
	defer rows.Close()

	var moves []cubesim.Move
	for rows.Next() {
		var axisName string
		var layer, angleDeg int
		if err := rows.Scan(&axisName, &layer, &angleDeg); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}

		var axis cubesim.Axis
		switch axisName {
		case "x":
			axis = cubesim.AxisX
		case "y":
			axis = cubesim.AxisY
		case "z":
			axis = cubesim.AxisZ
		default:
			return nil, fmt.Errorf("unknown axis %q in session %s", axisName, id)
		}

		moves = append(moves, cubesim.Move{
			Axis:  axis,
			Layer: layer,
			Angle: float64(angleDeg) / 90 * cubesim.QuarterTurn,
		})
	}
	return moves, rows.Err()
}

// DeleteSession removes a session and its moves.
func (db *DB) DeleteSession(id string) error {
	res, err := db.Exec("DELETE FROM sessions WHERE session_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s not found", id)
	}
	return nil
}
