package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

var (
	ErrSubjectEmpty           = errors.New("subject ID must be specified")
	ErrUsernameEmpty          = errors.New("username must be specified")
	ErrProviderEmpty          = errors.New("provider must be specified")
	ErrExpiresAtMissing       = errors.New("expiresAt must be specified")
	ErrExpiresBeforeStart     = errors.New("expiresAt must be after createdAt")
	ErrSessionIDEmpty         = errors.New("session ID must be specified")
	ErrSessionIDInvalidFormat = errors.New("session ID must be a valid UUID")
	ErrSessionIDInvalidV7     = errors.New("session ID must be a UUIDv7")
	ErrSessionIDGeneration    = errors.New("failed to generate session ID")
)

type ID uuid.UUID

func NewID() (ID, error) {
	v7, err := uuid.NewV7()
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrSessionIDGeneration, err)
	}

	return ID(v7), nil
}

func ParseID(id string) (ID, error) {
	if id == "" {
		return ID{}, ErrSessionIDEmpty
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrSessionIDInvalidFormat, err)
	}

	candidate := ID(parsed)

	return candidate, candidate.validate()
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

func (id ID) validate() error {
	if uuid.UUID(id) == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if uuid.UUID(id).Version() != 7 {
		return ErrSessionIDInvalidV7
	}

	return nil
}

// Session is one local login established by a successful callback. It carries
// the external session identifier (for single sign-out correlation) and the
// retained provider token (for provider-side logout) when the assertion
// supplied them.
type Session struct {
	id            ID
	subjectID     user.ID
	username      string
	provider      string
	externalSID   *string
	externalToken *string
	createdAt     time.Time
	expiresAt     time.Time
}

func NewSession(subjectID user.ID, username, provider string, externalSID, externalToken *string, createdAt, expiresAt time.Time) (*Session, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	return Rehydrate(id, subjectID, username, provider, externalSID, externalToken, createdAt, expiresAt)
}

// Rehydrate rebuilds a session with a known ID, for store implementations
// loading persisted records.
func Rehydrate(id ID, subjectID user.ID, username, provider string, externalSID, externalToken *string, createdAt, expiresAt time.Time) (*Session, error) {
	if err := id.validate(); err != nil {
		return nil, err
	}

	if subjectID == (user.ID{}) {
		return nil, ErrSubjectEmpty
	}

	if username == "" {
		return nil, ErrUsernameEmpty
	}

	if provider == "" {
		return nil, ErrProviderEmpty
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if expiresAt.IsZero() {
		return nil, ErrExpiresAtMissing
	}

	if !expiresAt.After(createdAt) {
		return nil, ErrExpiresBeforeStart
	}

	if externalSID != nil {
		v := *externalSID
		externalSID = &v
	}

	if externalToken != nil {
		v := *externalToken
		externalToken = &v
	}

	return &Session{
		id:            id,
		subjectID:     subjectID,
		username:      username,
		provider:      provider,
		externalSID:   externalSID,
		externalToken: externalToken,
		createdAt:     createdAt,
		expiresAt:     expiresAt,
	}, nil
}

func (s *Session) ID() ID {
	return s.id
}

func (s *Session) SubjectID() user.ID {
	return s.subjectID
}

func (s *Session) Username() string {
	return s.username
}

func (s *Session) Provider() string {
	return s.provider
}

// ExternalSessionID returns the provider session identifier carried into
// this session, when the assertion included one.
func (s *Session) ExternalSessionID() (string, bool) {
	if s.externalSID == nil {
		return "", false
	}

	return *s.externalSID, true
}

// ExternalToken returns the provider token retained for provider-side
// logout, when one was issued.
func (s *Session) ExternalToken() (string, bool) {
	if s.externalToken == nil {
		return "", false
	}

	return *s.externalToken, true
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.expiresAt)
}
