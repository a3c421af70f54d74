package storage

import (
	"path/filepath"
	"testing"

	"github.com/cubelab/cubesim"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadSession(t *testing.T) {
	db := openTestDB(t)

	seed := int64(42)
	moves := []cubesim.Move{cubesim.R, cubesim.UPrime, cubesim.F2, cubesim.M}
	facelets := "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

	id, err := db.SaveSession(&seed, moves, facelets)
	if err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if id == "" {
		t.Fatal("SaveSession returned empty id")
	}

	s, err := db.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if s.Seed == nil || *s.Seed != seed {
		t.Errorf("seed = %v, want %d", s.Seed, seed)
	}
	if s.MoveCount != len(moves) {
		t.Errorf("move count = %d, want %d", s.MoveCount, len(moves))
	}
	if s.Notation != cubesim.FormatMoves(moves) {
		t.Errorf("notation = %q, want %q", s.Notation, cubesim.FormatMoves(moves))
	}
	if s.Facelets != facelets {
		t.Errorf("facelets = %q, want %q", s.Facelets, facelets)
	}

	got, err := db.GetSessionMoves(id)
	if err != nil {
		t.Fatalf("GetSessionMoves: %v", err)
	}
	if len(got) != len(moves) {
		t.Fatalf("loaded %d moves, want %d", len(got), len(moves))
	}
	for i := range moves {
		if got[i].Notation() != moves[i].Notation() {
			t.Errorf("move %d = %s, want %s", i, got[i].Notation(), moves[i].Notation())
		}
	}
}

func TestSessionWithoutSeed(t *testing.T) {
	db := openTestDB(t)

	id, err := db.SaveSession(nil, []cubesim.Move{cubesim.R}, "")
	if err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	s, err := db.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if s.Seed != nil {
		t.Errorf("seed = %v, want nil", *s.Seed)
	}
}

func TestListSessions(t *testing.T) {
	db := openTestDB(t)

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		id, err := db.SaveSession(nil, []cubesim.Move{cubesim.U}, "")
		if err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
		ids[id] = true
	}

	sessions, err := db.ListSessions(10)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("listed %d sessions, want 3", len(sessions))
	}
	for _, s := range sessions {
		if !ids[s.SessionID] {
			t.Errorf("unexpected session %s", s.SessionID)
		}
	}
}

func TestDeleteSessionCascades(t *testing.T) {
	db := openTestDB(t)

	id, err := db.SaveSession(nil, []cubesim.Move{cubesim.R, cubesim.U}, "")
	if err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	if err := db.DeleteSession(id); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := db.GetSession(id); err == nil {
		t.Error("GetSession should fail after delete")
	}
	moves, err := db.GetSessionMoves(id)
	if err != nil {
		t.Fatalf("GetSessionMoves: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("moves survived delete: %d", len(moves))
	}

	if err := db.DeleteSession(id); err == nil {
		t.Error("deleting a missing session should fail")
	}
}
