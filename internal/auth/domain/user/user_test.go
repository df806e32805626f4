package user

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	claims := []assertion.Claim{
		{Type: assertion.ClaimName, Value: "Alice Example"},
		{Type: assertion.ClaimEmail, Value: "alice@example.com"},
	}

	usr := CreateUser("Alice Example", claims)

	if usr.ID() == (ID{}) {
		t.Fatalf("expected a generated id")
	}
	if usr.Username() != "Alice Example" {
		t.Fatalf("Username = %s, want Alice Example", usr.Username())
	}
	if diff := cmp.Diff(claims, usr.Claims()); diff != "" {
		t.Fatalf("Claims mismatch (-want +got):\n%s", diff)
	}

	// The user keeps its own copy of the claim set.
	claims[0].Value = "mutated"

	if usr.Claims()[0].Value != "Alice Example" {
		t.Fatalf("user claims were mutated through the input slice")
	}
}

func TestNewIDFromString(t *testing.T) {
	t.Parallel()

	id := NewID()

	parsed, err := NewIDFromString(id.String())
	if err != nil {
		t.Fatalf("NewIDFromString returned error: %v", err)
	}
	if parsed != id {
		t.Fatalf("parsed id %v != original %v", parsed, id)
	}

	if _, err := NewIDFromString("not-a-uuid"); err == nil {
		t.Fatalf("expected error for malformed id")
	}
}

func TestDeriveUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		claims []assertion.Claim
		want   string
	}{
		{
			name: "name claim preferred",
			claims: []assertion.Claim{
				{Type: assertion.ClaimPreferredUsername, Value: "alice"},
				{Type: assertion.ClaimName, Value: "Alice Example"},
			},
			want: "Alice Example",
		},
		{
			name: "preferred_username fallback",
			claims: []assertion.Claim{
				{Type: assertion.ClaimEmail, Value: "alice@example.com"},
				{Type: assertion.ClaimPreferredUsername, Value: "alice"},
			},
			want: "alice",
		},
		{
			name:   "external id fallback",
			claims: nil,
			want:   "ext-123",
		},
		{
			name: "empty name claim skipped",
			claims: []assertion.Claim{
				{Type: assertion.ClaimName, Value: ""},
				{Type: assertion.ClaimPreferredUsername, Value: "alice"},
			},
			want: "alice",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DeriveUsername(tt.claims, "ext-123")
			if got != tt.want {
				t.Fatalf("DeriveUsername = %s, want %s", got, tt.want)
			}
		})
	}
}
