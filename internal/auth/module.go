package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soratane/gatehouse/internal/auth/app/flow"
	"github.com/soratane/gatehouse/internal/auth/app/logout"
	authconfig "github.com/soratane/gatehouse/internal/auth/config"
	"github.com/soratane/gatehouse/internal/auth/controller"
	"github.com/soratane/gatehouse/internal/auth/domain/challenge"
	sessionjwt "github.com/soratane/gatehouse/internal/auth/infra/jwt"
	"github.com/soratane/gatehouse/internal/auth/infra/marker"
	"github.com/soratane/gatehouse/internal/auth/infra/provider"
	"github.com/soratane/gatehouse/internal/auth/infra/repository"
)

// RegisterRoutes wires the auth module against the given stores and
// registers its HTTP routes on the engine. Persistence is passed in
// explicitly; the module never falls back to process-local stores on
// its own.
func RegisterRoutes(ctx context.Context, r *gin.Engine, db *gorm.DB, redisClient *redis.Client) error {
	logger := slog.Default().WithGroup("auth")

	logger.Debug("loading auth configuration")

	authCfg, err := authconfig.Load()
	if err != nil {
		logger.Error("failed to load auth config", slog.String("error", err.Error()))

		return err
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&repository.UserModel{},
		&repository.ProvisioningLinkModel{},
		&repository.LoginEventModel{},
	); err != nil {
		return fmt.Errorf("migrate auth schema: %w", err)
	}

	identities := repository.NewIdentityStore(db)
	events := repository.NewLoginEventSink(db)
	states := repository.NewChallengeStateRepository(redisClient)
	sessions := repository.NewSessionRepository(redisClient)
	interactions := repository.NewInteractionRegistry(redisClient)

	providers := make(map[string]flow.ExternalProvider)

	if authCfg.OIDC != nil {
		for id, providerCfg := range authCfg.OIDC.Providers {
			rp, err := provider.New(ctx, provider.Config{
				ID:           providerCfg.ID,
				Issuer:       providerCfg.IssuerURL,
				ClientID:     providerCfg.ClientID,
				ClientSecret: providerCfg.ClientSecret,
				RedirectURI:  providerCfg.RedirectURI,
				Scopes:       providerCfg.Scopes,
			})
			if err != nil {
				logger.Error(
					"failed to initialize oidc provider",
					slog.String("provider", id),
					slog.String("error", err.Error()),
				)

				return fmt.Errorf("initialize oidc provider %s: %w", id, err)
			}

			providers[id] = rp
			logger.Info("initialized oidc provider", slog.String("provider", id))
		}
	} else {
		logger.Warn("oidc configuration not provided; login routes will reject every provider")
	}

	markerSigner, err := marker.NewSigner(authCfg.Session.Secret, challenge.StateExpiration)
	if err != nil {
		return fmt.Errorf("initialize marker signer: %w", err)
	}

	tokenGenerator, err := sessionjwt.NewSessionTokenGenerator(authCfg.Session.Secret)
	if err != nil {
		return fmt.Errorf("initialize session token generator: %w", err)
	}

	challengeUseCase := flow.NewChallengeHandler(providers, states, markerSigner)
	callbackUseCase := flow.NewCallbackHandler(
		providers,
		states,
		identities,
		sessions,
		interactions,
		events,
		markerSigner,
		tokenGenerator,
		authCfg.Session.Duration,
		authCfg.PublicOrigin,
	)
	logoutUseCase := logout.NewLogoutHandler(sessions, providers, tokenGenerator)

	handler := controller.NewHandler(challengeUseCase, callbackUseCase, logoutUseCase, controller.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	handler.RegisterRoutes(r)

	logger.Info("auth routes registered")

	return nil
}
