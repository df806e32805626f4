package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/soratane/gatehouse/internal/auth/app/flow"
	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
	"github.com/soratane/gatehouse/internal/auth/domain/identity"
	"github.com/soratane/gatehouse/internal/auth/domain/user"
	"github.com/soratane/gatehouse/internal/auth/infra/clock"
)

type UserModel struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	Username  string         `gorm:"type:text;not null"`
	Claims    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime"`
}

func (UserModel) TableName() string {
	return "auth_users"
}

type ProvisioningLinkModel struct {
	UserID    string    `gorm:"type:uuid;not null;index"`
	User      UserModel `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;foreignKey:UserID;references:ID"`
	Provider  string    `gorm:"type:text;not null;primaryKey"`
	Subject   string    `gorm:"type:text;not null;primaryKey"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (ProvisioningLinkModel) TableName() string {
	return "auth_provisioning_links"
}

type claimRecord struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type identityStore struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewIdentityStore returns the postgres-backed identity store. Link creation
// is insert-or-get on the (provider, subject) pair; a lost race surfaces as
// identity.ErrLinkConflict after rolling back the provisional user row.
func NewIdentityStore(db *gorm.DB) flow.IdentityStore {
	return &identityStore{
		db:    db,
		clock: &clock.RealClock{},
	}
}

func (s *identityStore) FindByExternalProvider(ctx context.Context, provider, externalID string) (*user.User, error) {
	var link ProvisioningLinkModel

	if err := s.db.WithContext(ctx).
		Where("provider = ? AND subject = ?", provider, externalID).
		First(&link).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}

		return nil, err
	}

	return s.loadUser(ctx, s.db, link.UserID)
}

func (s *identityStore) AutoProvisionUser(ctx context.Context, provider, externalID string, claims []assertion.Claim) (*user.User, error) {
	username := user.DeriveUsername(claims, externalID)
	candidate := user.CreateUser(username, claims)

	link, err := identity.NewLink(candidate.ID(), provider, externalID)
	if err != nil {
		return nil, err
	}

	claimsJSON, err := marshalClaims(claims)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userRecord := UserModel{
			ID:        candidate.ID().String(),
			Username:  candidate.Username(),
			Claims:    claimsJSON,
			CreatedAt: s.clock.Now(),
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&userRecord).Error; err != nil {
			return err
		}

		linkRecord := ProvisioningLinkModel{
			UserID:    link.UserID().String(),
			Provider:  link.Provider(),
			Subject:   link.Subject(),
			CreatedAt: s.clock.Now(),
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "subject"}},
			DoNothing: true,
		}).Create(&linkRecord)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// A concurrent callback won the pair. Returning an error rolls
			// back the provisional user row; the caller re-reads the winner.
			return identity.ErrLinkConflict
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidate, nil
}

func (s *identityStore) loadUser(ctx context.Context, db *gorm.DB, id string) (*user.User, error) {
	var record UserModel

	if err := db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}

		return nil, err
	}

	userID, err := user.NewIDFromString(record.ID)
	if err != nil {
		return nil, err
	}

	claims, err := unmarshalClaims(record.Claims)
	if err != nil {
		return nil, err
	}

	return user.NewUser(userID, record.Username, claims), nil
}

func marshalClaims(claims []assertion.Claim) (datatypes.JSON, error) {
	records := make([]claimRecord, 0, len(claims))

	for _, c := range claims {
		records = append(records, claimRecord{Type: c.Type, Value: c.Value})
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal claims: %w", err)
	}

	return datatypes.JSON(raw), nil
}

func unmarshalClaims(raw datatypes.JSON) ([]assertion.Claim, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var records []claimRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unmarshal claims: %w", err)
	}

	claims := make([]assertion.Claim, 0, len(records))

	for _, r := range records {
		claims = append(claims, assertion.Claim{Type: r.Type, Value: r.Value})
	}

	return claims, nil
}
