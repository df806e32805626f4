package identity

import (
	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

// Link maps one external identity onto one local account. The
// (provider, subject) pair is unique and append-only: once written it is
// never reassigned to a different user.
type Link struct {
	userID   user.ID
	provider string
	subject  string
}

func NewLink(userID user.ID, provider, subject string) (*Link, error) {
	if userID == (user.ID{}) {
		return nil, ErrUserIDEmpty
	}

	if provider == "" {
		return nil, ErrProviderEmpty
	}

	if subject == "" {
		return nil, ErrSubjectEmpty
	}

	return &Link{
		userID:   userID,
		provider: provider,
		subject:  subject,
	}, nil
}

func (l *Link) UserID() user.ID {
	return l.userID
}

func (l *Link) Provider() string {
	return l.provider
}

func (l *Link) Subject() string {
	return l.subject
}
