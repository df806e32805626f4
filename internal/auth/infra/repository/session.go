package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soratane/gatehouse/internal/auth/domain/session"
	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

type sessionRecord struct {
	ID            string    `json:"id"`
	SubjectID     string    `json:"subject_id"`
	Username      string    `json:"username"`
	Provider      string    `json:"provider"`
	ExternalSID   *string   `json:"external_sid,omitempty"`
	ExternalToken *string   `json:"external_token,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) session.Repository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) SaveSession(ctx context.Context, s *session.Session) error {
	if s == nil {
		return ErrSessionRequired
	}

	ttl := time.Until(s.ExpiresAt())
	if ttl <= 0 {
		return ErrSessionAlreadyExpired
	}

	var externalSID *string
	if sid, ok := s.ExternalSessionID(); ok {
		externalSID = &sid
	}

	var externalToken *string
	if token, ok := s.ExternalToken(); ok {
		externalToken = &token
	}

	record := sessionRecord{
		ID:            s.ID().String(),
		SubjectID:     s.SubjectID().String(),
		Username:      s.Username(),
		Provider:      s.Provider(),
		ExternalSID:   externalSID,
		ExternalToken: externalToken,
		CreatedAt:     s.CreatedAt(),
		ExpiresAt:     s.ExpiresAt(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(record.ID), payload, ttl).Err()
}

func (r *sessionRepository) GetSession(ctx context.Context, id session.ID) (*session.Session, error) {
	raw, err := r.client.Get(ctx, r.key(id.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrSessionNotFound
	}

	if err != nil {
		return nil, err
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	sessionID, err := session.ParseID(record.ID)
	if err != nil {
		return nil, err
	}

	subjectID, err := user.NewIDFromString(record.SubjectID)
	if err != nil {
		return nil, err
	}

	return session.Rehydrate(sessionID, subjectID, record.Username, record.Provider, record.ExternalSID, record.ExternalToken, record.CreatedAt, record.ExpiresAt)
}

func (r *sessionRepository) DeleteSession(ctx context.Context, id session.ID) error {
	return r.client.Del(ctx, r.key(id.String())).Err()
}

func (r *sessionRepository) key(id string) string {
	return fmt.Sprintf("auth:session:%s", id)
}
