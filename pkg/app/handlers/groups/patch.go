package groups

import (
	"context"
	"strings"

	"github.com/elimity-com/scim"
	serrors "github.com/elimity-com/scim/errors"
	"github.com/mailcow-tools/scim-bridge/pkg/convert"
	"github.com/mailcow-tools/scim-bridge/pkg/model"
	filter "github.com/scim2/filter-parser/v2"
)

// Patch honors only replace operations on the members path; every other
// operation is ignored silently. When no such operation is present the
// resolved member list is empty and the sync clears the group's
// custom-attribute projection.
func (g GroupResourceHandler) Patch(ctx context.Context, id string, operations []scim.PatchOperation) (scim.Resource, error) {
	logger := g.logger.With().Str("method", "Patch").Str("id", id).Logger()
	logger.Info().Int("operations", len(operations)).Msg("patch group")

	members := make([]string, 0)

	for _, op := range operations {
		if op.Op != scim.PatchOperationReplace || !isMembersPath(op.Path) {
			continue
		}

		group := &model.Group{}
		if err := convert.Unmarshal(op.Value, &group.Members); err != nil {
			logger.Error().Err(err).Msg("failed to convert patch value to members")
			return scim.Resource{}, serrors.ScimErrorInvalidSyntax
		}

		resolved, err := convert.GroupMembers(group)
		if err != nil {
			logger.Error().Err(err).Msg("malformed member list")
			return scim.Resource{}, serrors.ScimErrorBadRequest(err.Error())
		}

		members = resolved
	}

	if err := g.reconciler.Sync(ctx, id, members); err != nil {
		logger.Error().Err(err).Msg("failed to sync group")
		return scim.Resource{}, serrors.ScimErrorBadRequest(err.Error())
	}

	result := convert.GroupToResource(id, id, members)

	logger.Trace().Any("response", result).Msg("group patched")

	return result, nil
}

func isMembersPath(path *filter.Path) bool {
	if path == nil {
		return false
	}

	return strings.EqualFold(path.AttributePath.AttributeName, "members") && path.ValueExpression == nil
}
