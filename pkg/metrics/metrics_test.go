package metrics_test

import (
	"testing"

	"github.com/mailcow-tools/scim-bridge/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}

	t.Fatalf("metric %s not found", name)

	return 0
}

func TestCollectorCounters(t *testing.T) {
	assert := require.New(t)

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.UserSynced()
	c.UserSynced()
	c.GroupSynced()
	c.DomainAdminCreated()
	c.DomainAdminDeleted()

	assert.Equal(2.0, counterValue(t, reg, "scim_bridge_users_synced_total"))
	assert.Equal(1.0, counterValue(t, reg, "scim_bridge_groups_synced_total"))
	assert.Equal(1.0, counterValue(t, reg, "scim_bridge_domain_admins_created_total"))
	assert.Equal(1.0, counterValue(t, reg, "scim_bridge_domain_admins_deleted_total"))
}

func TestCollectorMailcowRequestVec(t *testing.T) {
	assert := require.New(t)

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.MailcowRequest("add/mailbox", 200)
	c.MailcowRequest("add/mailbox", 200)
	c.MailcowRequest("add/domain-admin", 409)

	families, err := reg.Gather()
	assert.NoError(err)

	for _, mf := range families {
		if mf.GetName() == "scim_bridge_mailcow_requests_total" {
			assert.Len(mf.GetMetric(), 2)
			return
		}
	}

	t.Fatal("scim_bridge_mailcow_requests_total not found")
}
