package groups_test

import (
	"context"
	"testing"

	"github.com/elimity-com/scim"
	"github.com/mailcow-tools/scim-bridge/pkg/app/handlers/groups"
	"github.com/rs/zerolog"
	filter "github.com/scim2/filter-parser/v2"
	"github.com/stretchr/testify/require"
)

type fakeReconciler struct {
	name    string
	members []string
	calls   int
}

func (f *fakeReconciler) Sync(_ context.Context, displayName string, members []string) error {
	f.calls++
	f.name = displayName
	f.members = members

	return nil
}

func newHandler(t *testing.T, r groups.Reconciler) *groups.GroupResourceHandler {
	t.Helper()

	logger := zerolog.Nop()
	h, err := groups.NewGroupResourceHandler(&logger, r)
	require.NoError(t, err)

	return h
}

func membersPath(t *testing.T) *filter.Path {
	t.Helper()

	path, err := filter.ParsePath([]byte("members"))
	require.NoError(t, err)

	return &path
}

func TestPatchReplaceMembers(t *testing.T) {
	assert := require.New(t)

	r := &fakeReconciler{}
	h := newHandler(t, r)

	ops := []scim.PatchOperation{
		{
			Op:   scim.PatchOperationReplace,
			Path: membersPath(t),
			Value: []interface{}{
				map[string]interface{}{"value": "a@x.com"},
				map[string]interface{}{"value": "b@x.com"},
			},
		},
	}

	resource, err := h.Patch(context.Background(), "Sales", ops)
	assert.NoError(err)
	assert.Equal("Sales", resource.ID)

	assert.Equal(1, r.calls)
	assert.Equal("Sales", r.name)
	assert.Equal([]string{"a@x.com", "b@x.com"}, r.members)
}

func TestPatchIgnoresOtherOperations(t *testing.T) {
	assert := require.New(t)

	r := &fakeReconciler{}
	h := newHandler(t, r)

	addPath, err := filter.ParsePath([]byte("members"))
	assert.NoError(err)

	ops := []scim.PatchOperation{
		{
			Op:    scim.PatchOperationAdd,
			Path:  &addPath,
			Value: []interface{}{map[string]interface{}{"value": "a@x.com"}},
		},
	}

	_, err = h.Patch(context.Background(), "Sales", ops)
	assert.NoError(err)

	// the add op is ignored; the sync clears the projection
	assert.Equal(1, r.calls)
	assert.Empty(r.members)
}

func TestPatchRejectsMemberWithoutValue(t *testing.T) {
	assert := require.New(t)

	r := &fakeReconciler{}
	h := newHandler(t, r)

	ops := []scim.PatchOperation{
		{
			Op:    scim.PatchOperationReplace,
			Path:  membersPath(t),
			Value: []interface{}{map[string]interface{}{"display": "no value"}},
		},
	}

	_, err := h.Patch(context.Background(), "Sales", ops)
	assert.Error(err)
	assert.Zero(r.calls)
}
