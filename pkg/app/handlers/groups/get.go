package groups

import (
	"context"

	"github.com/elimity-com/scim"
	"github.com/mailcow-tools/scim-bridge/pkg/convert"
)

// Get echoes a group by name. Membership is a write-only projection onto
// mailbox custom attributes and cannot be read back, so the member list is
// always empty.
func (g GroupResourceHandler) Get(ctx context.Context, id string) (scim.Resource, error) {
	logger := g.logger.With().Str("method", "Get").Str("id", id).Logger()
	logger.Info().Msg("get group")

	return convert.GroupToResource(id, id, nil), nil
}

// GetAll returns an empty page; the platform stores no group objects.
func (g GroupResourceHandler) GetAll(ctx context.Context, params scim.ListRequestParams) (scim.Page, error) {
	logger := g.logger.With().Str("method", "GetAll").Logger()
	logger.Info().Msg("getting all groups")

	return scim.Page{
		TotalResults: 0,
		Resources:    []scim.Resource{},
	}, nil
}
