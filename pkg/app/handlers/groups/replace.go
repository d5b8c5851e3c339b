package groups

import (
	"context"

	"github.com/elimity-com/scim"
	serrors "github.com/elimity-com/scim/errors"
	"github.com/mailcow-tools/scim-bridge/pkg/convert"
	"github.com/mailcow-tools/scim-bridge/pkg/model"
	"github.com/samber/lo"
)

// Replace runs a full sync of the group: the body's member list is treated as
// authoritative and projected downstream like a create.
func (g GroupResourceHandler) Replace(ctx context.Context, id string, attributes scim.ResourceAttributes) (scim.Resource, error) {
	logger := g.logger.With().Str("method", "Replace").Str("id", id).Logger()
	logger.Info().Msg("replace group")

	group := &model.Group{}
	if err := convert.Unmarshal(attributes, group); err != nil {
		logger.Error().Err(err).Msg("failed to convert attributes to group")
		return scim.Resource{}, serrors.ScimErrorInvalidSyntax
	}

	displayName := lo.Ternary(group.DisplayName != "", group.DisplayName, id)

	members, err := convert.GroupMembers(group)
	if err != nil {
		logger.Error().Err(err).Msg("malformed member list")
		return scim.Resource{}, serrors.ScimErrorBadRequest(err.Error())
	}

	if err := g.reconciler.Sync(ctx, displayName, members); err != nil {
		logger.Error().Err(err).Msg("failed to sync group")
		return scim.Resource{}, serrors.ScimErrorBadRequest(err.Error())
	}

	result := convert.GroupToResource(id, displayName, members)

	logger.Trace().Any("response", result).Msg("group replaced")

	return result, nil
}
