// Package reconcile decides the downstream side effects of a group sync:
// which mailboxes receive which custom-attribute value, and whether members
// are promoted to domain admin.
package reconcile

import (
	"context"

	"github.com/rs/zerolog"
)

// The custom-attribute key group membership is projected onto.
const groupsAttribute = "groups"

// MailcowClient is the subset of the downstream client the policy drives.
type MailcowClient interface {
	SetCustomAttribute(ctx context.Context, items []string, attribute string, values []string) error
	AddDomainAdmin(ctx context.Context, address string) error
	DeleteDomainAdmin(ctx context.Context, address string) error
}

// Metrics is the counter surface the policy reports to.
type Metrics interface {
	GroupSynced()
	DomainAdminCreated()
	DomainAdminDeleted()
}

type Reconciler struct {
	adminGroup string
	client     MailcowClient
	metrics    Metrics
	logger     *zerolog.Logger
}

func NewReconciler(adminGroup string, client MailcowClient, m Metrics, logger *zerolog.Logger) *Reconciler {
	reconcilerLogger := logger.With().Str("component", "reconcile").Logger()

	return &Reconciler{
		adminGroup: adminGroup,
		client:     client,
		metrics:    m,
		logger:     &reconcilerLogger,
	}
}

// Sync applies a group's resolved member list, identically for create, full
// replace and patch. One custom-attribute write assigns the group name to
// every member, unconditionally overwriting prior values: last writer wins,
// a mailbox in two groups keeps whichever synced most recently, and an empty
// member list clears the projection. If the group is the configured
// privileged group, each member receives one domain-admin grant; grants are
// idempotent downstream. A failed call aborts the remaining steps and side
// effects already issued are not rolled back.
func (r *Reconciler) Sync(ctx context.Context, displayName string, members []string) error {
	logger := r.logger.With().Str("method", "Sync").Str("group", displayName).Logger()
	logger.Info().Int("members", len(members)).Msg("sync group")

	if err := r.client.SetCustomAttribute(ctx, members, groupsAttribute, []string{displayName}); err != nil {
		logger.Error().Err(err).Msg("failed to set custom attribute")
		return err
	}

	if displayName == r.adminGroup {
		for _, address := range members {
			if err := r.client.AddDomainAdmin(ctx, address); err != nil {
				logger.Error().Err(err).Str("address", address).Msg("failed to grant domain admin")
				return err
			}

			r.metrics.DomainAdminCreated()
		}
	}

	r.metrics.GroupSynced()

	return nil
}

// Revoke removes a mailbox's domain-admin grant. A grant that never existed
// is success.
func (r *Reconciler) Revoke(ctx context.Context, address string) error {
	logger := r.logger.With().Str("method", "Revoke").Str("address", address).Logger()
	logger.Info().Msg("revoke domain admin")

	if err := r.client.DeleteDomainAdmin(ctx, address); err != nil {
		logger.Error().Err(err).Msg("failed to revoke domain admin")
		return err
	}

	r.metrics.DomainAdminDeleted()

	return nil
}
