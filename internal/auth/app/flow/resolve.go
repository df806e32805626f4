package flow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
	"github.com/soratane/gatehouse/internal/auth/domain/identity"
	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

// resolveUser maps an assertion onto a local account, provisioning one on
// first sight. The store owns atomicity; a lost provisioning race is
// resolved here by re-reading the winner instead of failing.
func (h *callbackHandler) resolveUser(ctx context.Context, asrt *assertion.Assertion) (*user.User, error) {
	existing, err := h.identities.FindByExternalProvider(ctx, asrt.Provider(), asrt.SubjectID())
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	provisioned, err := h.identities.AutoProvisionUser(ctx, asrt.Provider(), asrt.SubjectID(), asrt.Claims())
	if err != nil {
		if errors.Is(err, identity.ErrLinkConflict) {
			h.logger.Debug("lost provisioning race, re-reading link",
				slog.String("provider", asrt.Provider()),
			)

			return h.identities.FindByExternalProvider(ctx, asrt.Provider(), asrt.SubjectID())
		}

		return nil, err
	}

	h.logger.Info("auto-provisioned local account",
		slog.String("provider", asrt.Provider()),
		slog.String("subject", provisioned.ID().String()),
	)

	return provisioned, nil
}
