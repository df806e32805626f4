package identity

import (
	"errors"
	"testing"

	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

func TestNewLink(t *testing.T) {
	t.Parallel()

	userID := user.NewID()

	link, err := NewLink(userID, "google", "ext-123")
	if err != nil {
		t.Fatalf("NewLink returned error: %v", err)
	}

	if link.UserID() != userID {
		t.Fatalf("UserID = %v, want %v", link.UserID(), userID)
	}
	if link.Provider() != "google" {
		t.Fatalf("Provider = %s, want google", link.Provider())
	}
	if link.Subject() != "ext-123" {
		t.Fatalf("Subject = %s, want ext-123", link.Subject())
	}
}

func TestNewLinkErrors(t *testing.T) {
	t.Parallel()

	userID := user.NewID()

	tests := []struct {
		name     string
		userID   user.ID
		provider string
		subject  string
		wantErr  error
	}{
		{
			name:     "zero user id",
			provider: "google",
			subject:  "ext-123",
			wantErr:  ErrUserIDEmpty,
		},
		{
			name:    "empty provider",
			userID:  userID,
			subject: "ext-123",
			wantErr: ErrProviderEmpty,
		},
		{
			name:     "empty subject",
			userID:   userID,
			provider: "google",
			wantErr:  ErrSubjectEmpty,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLink(tt.userID, tt.provider, tt.subject)
			if err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
