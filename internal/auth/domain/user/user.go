package user

import (
	"github.com/google/uuid"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
)

type ID uuid.UUID

func NewID() ID {
	return ID(uuid.New())
}

func NewIDFromString(idStr string) (ID, error) {
	uuidVal, err := uuid.Parse(idStr)
	if err != nil {
		return ID{}, err
	}

	return ID(uuidVal), nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// User is a local account. Accounts created by auto-provisioning carry the
// claim set the external provider asserted at first sight; nothing in this
// module mutates a user after creation.
type User struct {
	id       ID
	username string
	claims   []assertion.Claim
}

func NewUser(id ID, username string, claims []assertion.Claim) *User {
	copied := make([]assertion.Claim, len(claims))
	copy(copied, claims)

	return &User{
		id:       id,
		username: username,
		claims:   copied,
	}
}

// CreateUser builds a user with a freshly generated subject id.
func CreateUser(username string, claims []assertion.Claim) *User {
	return NewUser(NewID(), username, claims)
}

func (u *User) ID() ID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Claims() []assertion.Claim {
	out := make([]assertion.Claim, len(u.claims))
	copy(out, u.claims)

	return out
}

// DeriveUsername picks a display username for a provisioned account: the
// "name" claim, else "preferred_username", else the external subject id.
func DeriveUsername(claims []assertion.Claim, externalID string) string {
	if name, ok := assertion.First(claims, assertion.ClaimName); ok && name != "" {
		return name
	}

	if name, ok := assertion.First(claims, assertion.ClaimPreferredUsername); ok && name != "" {
		return name
	}

	return externalID
}
