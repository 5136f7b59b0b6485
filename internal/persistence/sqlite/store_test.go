package sqlite

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Lekha1657/fedfproject/internal/persistence"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := Open(":memory:", logger)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close returned error: %v", err)
		}
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	return store
}

func TestStore_Migrate(t *testing.T) {
	store := openTestStore(t)

	// Migrate must be safe to re-run against an existing schema.
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}

func TestAccountRepository(t *testing.T) {
	store := openTestStore(t)
	repo := NewAccountRepository(store)
	ctx := context.Background()

	if _, err := repo.GetAccount(ctx, "jane@student.edu"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	account := persistence.UserAccount{
		Name:          "Jane Doe",
		Email:         "jane@student.edu",
		StudentID:     "S123456",
		Participation: []persistence.ParticipationEntry{{ProgramID: "p-yoga", Date: time.Date(2024, 9, 9, 10, 30, 0, 0, time.UTC)}},
		PasswordHash:  "digest",
	}
	if err := repo.PutAccount(ctx, account); err != nil {
		t.Fatalf("PutAccount returned error: %v", err)
	}

	loaded, err := repo.GetAccount(ctx, "  JANE@Student.EDU ")
	if err != nil {
		t.Fatalf("GetAccount returned error: %v", err)
	}
	if loaded.Name != account.Name || loaded.PasswordHash != account.PasswordHash {
		t.Fatalf("unexpected account: %+v", loaded)
	}
	if len(loaded.Participation) != 1 || loaded.Participation[0].ProgramID != "p-yoga" {
		t.Fatalf("participation was not preserved: %+v", loaded.Participation)
	}
	if !loaded.Participation[0].Date.Equal(account.Participation[0].Date) {
		t.Fatalf("participation date drifted: %v", loaded.Participation[0].Date)
	}

	account.Name = "Jane Updated"
	if err := repo.PutAccount(ctx, account); err != nil {
		t.Fatalf("second PutAccount returned error: %v", err)
	}
	replaced, err := repo.GetAccount(ctx, "jane@student.edu")
	if err != nil {
		t.Fatalf("GetAccount returned error: %v", err)
	}
	if replaced.Name != "Jane Updated" {
		t.Fatalf("put must replace, got %+v", replaced)
	}
}

func TestSessionRepository(t *testing.T) {
	store := openTestStore(t)
	repo := NewSessionRepository(store)
	ctx := context.Background()

	if _, found, err := repo.CurrentSession(ctx); err != nil || found {
		t.Fatalf("expected no session, got found=%v err=%v", found, err)
	}

	session := persistence.Session{
		Name:          "Jane Doe",
		Email:         "jane@student.edu",
		StudentID:     "S123456",
		Participation: []persistence.ParticipationEntry{},
	}
	if err := repo.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}
	loaded, found, err := repo.CurrentSession(ctx)
	if err != nil {
		t.Fatalf("CurrentSession returned error: %v", err)
	}
	if !found || loaded.Email != "jane@student.edu" {
		t.Fatalf("unexpected session: found=%v %+v", found, loaded)
	}

	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession returned error: %v", err)
	}
	if _, found, err := repo.CurrentSession(ctx); err != nil || found {
		t.Fatalf("session must be gone, got found=%v err=%v", found, err)
	}

	// Clearing again is a no-op.
	if err := repo.ClearSession(ctx); err != nil {
		t.Fatalf("second ClearSession returned error: %v", err)
	}
}

func TestProgramRepository(t *testing.T) {
	store := openTestStore(t)
	repo := NewProgramRepository(store)
	ctx := context.Background()

	seeded, err := repo.ListPrograms(ctx)
	if err != nil {
		t.Fatalf("ListPrograms returned error: %v", err)
	}
	if len(seeded) != len(persistence.SeedPrograms()) {
		t.Fatalf("expected the starter catalog, got %d programs", len(seeded))
	}

	catalog := []persistence.Program{{ID: "p-custom", Title: "Custom", Participants: 3}}
	if err := repo.SavePrograms(ctx, catalog); err != nil {
		t.Fatalf("SavePrograms returned error: %v", err)
	}
	loaded, err := repo.ListPrograms(ctx)
	if err != nil {
		t.Fatalf("ListPrograms returned error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "p-custom" {
		t.Fatalf("unexpected catalog: %+v", loaded)
	}

	// A deliberately empty catalog stays empty, it must not reseed.
	if err := repo.SavePrograms(ctx, nil); err != nil {
		t.Fatalf("SavePrograms(nil) returned error: %v", err)
	}
	loaded, err = repo.ListPrograms(ctx)
	if err != nil {
		t.Fatalf("ListPrograms returned error: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected an empty catalog, got %+v", loaded)
	}
}

func TestProfileRepository(t *testing.T) {
	store := openTestStore(t)
	repo := NewProfileRepository(store)
	ctx := context.Background()

	guest, err := repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if guest.Name != "Guest Student" || guest.Email != "" {
		t.Fatalf("expected the guest profile, got %+v", guest)
	}

	profile := persistence.Profile{Name: "Jane Doe", Email: "jane@student.edu", StudentID: "S123456"}
	if err := repo.PutProfile(ctx, profile); err != nil {
		t.Fatalf("PutProfile returned error: %v", err)
	}
	loaded, err := repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if loaded.Name != "Jane Doe" {
		t.Fatalf("unexpected profile: %+v", loaded)
	}
	if loaded.Participation == nil {
		t.Fatal("participation must never be nil")
	}
}

func TestPreferenceRepository(t *testing.T) {
	store := openTestStore(t)
	repo := NewPreferenceRepository(store)
	ctx := context.Background()

	enabled, err := repo.DarkMode(ctx)
	if err != nil {
		t.Fatalf("DarkMode returned error: %v", err)
	}
	if enabled {
		t.Fatal("dark mode must default to off")
	}

	if err := repo.SetDarkMode(ctx, true); err != nil {
		t.Fatalf("SetDarkMode returned error: %v", err)
	}
	enabled, err = repo.DarkMode(ctx)
	if err != nil {
		t.Fatalf("DarkMode returned error: %v", err)
	}
	if !enabled {
		t.Fatal("dark mode was not stored")
	}
}

func TestCollectionRepositories_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	when := time.Date(2024, 10, 1, 14, 0, 0, 0, time.UTC)

	calendar := NewCalendarRepository(store)
	events, err := calendar.ListEvents(ctx)
	if err != nil || len(events) != 0 {
		t.Fatalf("expected no events, got %v err=%v", events, err)
	}
	if err := calendar.SaveEvents(ctx, []persistence.CalendarEvent{{ID: "e1", ProgramID: "p-yoga", Title: "Campus Yoga", Date: when, UserEmail: "jane@student.edu"}}); err != nil {
		t.Fatalf("SaveEvents returned error: %v", err)
	}
	events, err = calendar.ListEvents(ctx)
	if err != nil || len(events) != 1 || events[0].ID != "e1" {
		t.Fatalf("unexpected events: %v err=%v", events, err)
	}

	appointments := NewAppointmentRepository(store)
	if err := appointments.SaveAppointments(ctx, []persistence.Appointment{{ID: "a1", SessionID: "svc-counseling-1", Title: "Counseling", Provider: "Dr. Smith", UserEmail: "jane@student.edu", Date: when}}); err != nil {
		t.Fatalf("SaveAppointments returned error: %v", err)
	}
	booked, err := appointments.ListAppointments(ctx)
	if err != nil || len(booked) != 1 || booked[0].SessionID != "svc-counseling-1" {
		t.Fatalf("unexpected appointments: %v err=%v", booked, err)
	}

	reminders := NewReminderRepository(store)
	if err := reminders.SaveReminders(ctx, []persistence.Reminder{{ID: "r1", Title: "Pick up kit", Date: "2024-10-01", Type: "resource", UserEmail: "jane@student.edu"}}); err != nil {
		t.Fatalf("SaveReminders returned error: %v", err)
	}
	notes, err := reminders.ListReminders(ctx)
	if err != nil || len(notes) != 1 || notes[0].Title != "Pick up kit" {
		t.Fatalf("unexpected reminders: %v err=%v", notes, err)
	}
}

func TestStore_CorruptDocumentBehavesLikeMissing(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	corrupt := func(key string) {
		t.Helper()
		const upsert = `
			INSERT INTO documents (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`
		if _, err := store.db.ExecContext(ctx, upsert, key, "{not json"); err != nil {
			t.Fatalf("failed to plant corrupt document: %v", err)
		}
	}

	corrupt(keyPrograms)
	programs, err := NewProgramRepository(store).ListPrograms(ctx)
	if err != nil {
		t.Fatalf("ListPrograms returned error: %v", err)
	}
	if len(programs) != len(persistence.SeedPrograms()) {
		t.Fatalf("a corrupt catalog must fall back to the seed, got %d programs", len(programs))
	}

	corrupt(keyAccounts)
	if _, err := NewAccountRepository(store).GetAccount(ctx, "jane@student.edu"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("a corrupt account document must read as empty, got %v", err)
	}

	corrupt(keySession)
	if _, found, err := NewSessionRepository(store).CurrentSession(ctx); err != nil || found {
		t.Fatalf("a corrupt session must read as absent, got found=%v err=%v", found, err)
	}

	// Writing repairs the document.
	if err := NewSessionRepository(store).SaveSession(ctx, persistence.Session{Email: "jane@student.edu"}); err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}
	session, found, err := NewSessionRepository(store).CurrentSession(ctx)
	if err != nil || !found || session.Email != "jane@student.edu" {
		t.Fatalf("expected the repaired session, got found=%v %+v err=%v", found, session, err)
	}
}
