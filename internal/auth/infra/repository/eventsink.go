package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/soratane/gatehouse/internal/auth/app/flow"
	"github.com/soratane/gatehouse/internal/auth/infra/clock"
)

type LoginEventModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Provider  string    `gorm:"type:text;not null;index"`
	Subject   string    `gorm:"type:text;not null"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	Username  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (LoginEventModel) TableName() string {
	return "auth_login_events"
}

type loginEventSink struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewLoginEventSink records successful logins into the audit table. Callers
// treat it as best-effort; a write failure is theirs to ignore.
func NewLoginEventSink(db *gorm.DB) flow.EventSink {
	return &loginEventSink{
		db:    db,
		clock: &clock.RealClock{},
	}
}

func (s *loginEventSink) RecordLoginSuccess(ctx context.Context, provider, externalID, localSubjectID, username string) error {
	record := LoginEventModel{
		Provider:  provider,
		Subject:   externalID,
		UserID:    localSubjectID,
		Username:  username,
		CreatedAt: s.clock.Now(),
	}

	return s.db.WithContext(ctx).Create(&record).Error
}
