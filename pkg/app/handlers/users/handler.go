package users

import (
	"context"

	"github.com/mailcow-tools/scim-bridge/pkg/config"
	"github.com/mailcow-tools/scim-bridge/pkg/mailcow"
	"github.com/rs/zerolog"
)

// MailcowClient is the downstream surface the user handlers need.
type MailcowClient interface {
	ListMailboxes(ctx context.Context) ([]mailcow.Mailbox, error)
	CreateMailbox(ctx context.Context, req mailcow.CreateMailboxRequest) (int, string, error)
	DeleteMailbox(ctx context.Context, address string) error
}

// Revoker removes a mailbox's domain-admin grant during deprovisioning.
type Revoker interface {
	Revoke(ctx context.Context, address string) error
}

type Metrics interface {
	UserSynced()
}

type UsersResourceHandler struct {
	cfg     *config.Mailcow
	logger  *zerolog.Logger
	mailcow MailcowClient
	revoker Revoker
	metrics Metrics
}

func NewUsersResourceHandler(logger *zerolog.Logger,
	cfg *config.Mailcow,
	client MailcowClient,
	revoker Revoker,
	m Metrics,
) (*UsersResourceHandler, error) {
	usersLogger := logger.With().Str("component", "users-handler").Logger()

	return &UsersResourceHandler{
		cfg:     cfg,
		logger:  &usersLogger,
		mailcow: client,
		revoker: revoker,
		metrics: m,
	}, nil
}
