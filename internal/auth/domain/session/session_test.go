package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

func TestNewIDIsV7(t *testing.T) {
	t.Parallel()

	id, err := NewID()
	if err != nil {
		t.Fatalf("NewID returned error: %v", err)
	}

	if uuid.UUID(id).Version() != 7 {
		t.Fatalf("version = %d, want 7", uuid.UUID(id).Version())
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	valid, err := NewID()
	if err != nil {
		t.Fatalf("NewID returned error: %v", err)
	}

	parsed, err := ParseID(valid.String())
	if err != nil {
		t.Fatalf("ParseID returned error: %v", err)
	}
	if parsed != valid {
		t.Fatalf("parsed id %v != original %v", parsed, valid)
	}

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty",
			input:   "",
			wantErr: ErrSessionIDEmpty,
		},
		{
			name:    "malformed",
			input:   "not-a-uuid",
			wantErr: ErrSessionIDInvalidFormat,
		},
		{
			name:    "wrong version",
			input:   uuid.New().String(),
			wantErr: ErrSessionIDInvalidV7,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseID(tt.input)
			if err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewSessionSuccess(t *testing.T) {
	t.Parallel()

	subjectID := user.NewID()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := createdAt.Add(24 * time.Hour)
	sid := "provider-session-1"
	token := "id-token"

	sess, err := NewSession(subjectID, "alice", "google", &sid, &token, createdAt, expiresAt)
	if err != nil {
		t.Fatalf("NewSession returned error: %v", err)
	}

	if sess.SubjectID() != subjectID {
		t.Fatalf("SubjectID = %v, want %v", sess.SubjectID(), subjectID)
	}
	if sess.Username() != "alice" {
		t.Fatalf("Username = %s, want alice", sess.Username())
	}
	if sess.Provider() != "google" {
		t.Fatalf("Provider = %s, want google", sess.Provider())
	}

	gotSID, ok := sess.ExternalSessionID()
	if !ok || gotSID != sid {
		t.Fatalf("ExternalSessionID = (%s, %v), want (%s, true)", gotSID, ok, sid)
	}

	gotToken, ok := sess.ExternalToken()
	if !ok || gotToken != token {
		t.Fatalf("ExternalToken = (%s, %v), want (%s, true)", gotToken, ok, token)
	}

	if uuid.UUID(sess.ID()).Version() != 7 {
		t.Fatalf("generated session id is not a UUIDv7")
	}
}

func TestNewSessionWithoutOptionalFields(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()

	sess, err := NewSession(user.NewID(), "alice", "google", nil, nil, createdAt, createdAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("NewSession returned error: %v", err)
	}

	if _, ok := sess.ExternalSessionID(); ok {
		t.Fatalf("expected no external session id")
	}
	if _, ok := sess.ExternalToken(); ok {
		t.Fatalf("expected no external token")
	}
}

func TestRehydrateErrors(t *testing.T) {
	t.Parallel()

	id, err := NewID()
	if err != nil {
		t.Fatalf("NewID returned error: %v", err)
	}

	subjectID := user.NewID()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := createdAt.Add(time.Hour)

	tests := []struct {
		name      string
		id        ID
		subjectID user.ID
		username  string
		provider  string
		createdAt time.Time
		expiresAt time.Time
		wantErr   error
	}{
		{
			name:      "zero session id",
			subjectID: subjectID,
			username:  "alice",
			provider:  "google",
			createdAt: createdAt,
			expiresAt: expiresAt,
			wantErr:   ErrSessionIDEmpty,
		},
		{
			name:      "zero subject",
			id:        id,
			username:  "alice",
			provider:  "google",
			createdAt: createdAt,
			expiresAt: expiresAt,
			wantErr:   ErrSubjectEmpty,
		},
		{
			name:      "empty username",
			id:        id,
			subjectID: subjectID,
			provider:  "google",
			createdAt: createdAt,
			expiresAt: expiresAt,
			wantErr:   ErrUsernameEmpty,
		},
		{
			name:      "empty provider",
			id:        id,
			subjectID: subjectID,
			username:  "alice",
			createdAt: createdAt,
			expiresAt: expiresAt,
			wantErr:   ErrProviderEmpty,
		},
		{
			name:      "missing expiry",
			id:        id,
			subjectID: subjectID,
			username:  "alice",
			provider:  "google",
			createdAt: createdAt,
			wantErr:   ErrExpiresAtMissing,
		},
		{
			name:      "expiry before start",
			id:        id,
			subjectID: subjectID,
			username:  "alice",
			provider:  "google",
			createdAt: createdAt,
			expiresAt: createdAt.Add(-time.Minute),
			wantErr:   ErrExpiresBeforeStart,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Rehydrate(tt.id, tt.subjectID, tt.username, tt.provider, nil, nil, tt.createdAt, tt.expiresAt)
			if err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSessionIsExpired(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiresAt := createdAt.Add(time.Hour)

	sess, err := NewSession(user.NewID(), "alice", "google", nil, nil, createdAt, expiresAt)
	if err != nil {
		t.Fatalf("NewSession returned error: %v", err)
	}

	if sess.IsExpired(expiresAt) {
		t.Fatalf("session should not be expired exactly at expiry")
	}
	if !sess.IsExpired(expiresAt.Add(time.Second)) {
		t.Fatalf("session should be expired after expiry")
	}
}
