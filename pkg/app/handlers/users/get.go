package users

import (
	"context"

	"github.com/elimity-com/scim"
	serrors "github.com/elimity-com/scim/errors"
	"github.com/mailcow-tools/scim-bridge/pkg/convert"
)

func (u UsersResourceHandler) Get(ctx context.Context, id string) (scim.Resource, error) {
	logger := u.logger.With().Str("method", "Get").Str("id", id).Logger()
	logger.Info().Msg("get user")

	mailboxes, err := u.mailcow.ListMailboxes(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list mailboxes")
		return scim.Resource{}, err
	}

	for i := range mailboxes {
		if mailboxes[i].Username == id {
			resource := convert.MailboxToResource(&mailboxes[i])
			logger.Trace().Any("user", resource).Msg("user retrieved")

			return resource, nil
		}
	}

	return scim.Resource{}, serrors.ScimErrorResourceNotFound(id)
}

// GetAll lists every mailbox of the default domain. Page bounds are advisory:
// the full result set is computed and the framework echoes the request
// parameters back.
func (u UsersResourceHandler) GetAll(ctx context.Context, params scim.ListRequestParams) (scim.Page, error) {
	logger := u.logger.With().Str("method", "GetAll").Logger()
	logger.Info().Msg("getting all users")

	mailboxes, err := u.mailcow.ListMailboxes(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list mailboxes")
		return scim.Page{}, err
	}

	resources := make([]scim.Resource, 0, len(mailboxes))

	for i := range mailboxes {
		resource := convert.MailboxToResource(&mailboxes[i])

		if params.FilterValidator == nil || params.FilterValidator.PassesFilter(resource.Attributes) == nil {
			resources = append(resources, resource)
		}
	}

	logger.Trace().Int("total_results", len(resources)).Msg("users read")

	return scim.Page{
		TotalResults: len(resources),
		Resources:    resources,
	}, nil
}
