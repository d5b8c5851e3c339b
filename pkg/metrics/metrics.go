// Package metrics owns the bridge's Prometheus counters.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the counter set shared by the handler layer. Counters are
// approximate by design; no cross-request identity is kept.
type Collector struct {
	usersSynced     prometheus.Counter
	groupsSynced    prometheus.Counter
	adminsCreated   prometheus.Counter
	adminsDeleted   prometheus.Counter
	mailcowRequests *prometheus.CounterVec
}

// NewCollector registers the bridge counters on the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		usersSynced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scim_bridge_users_synced_total",
			Help: "Mailboxes provisioned or re-provisioned via SCIM user sync.",
		}),
		groupsSynced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scim_bridge_groups_synced_total",
			Help: "Group syncs projected onto mailbox custom attributes.",
		}),
		adminsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scim_bridge_domain_admins_created_total",
			Help: "Domain-admin grants issued for privileged-group members.",
		}),
		adminsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scim_bridge_domain_admins_deleted_total",
			Help: "Domain-admin grants revoked.",
		}),
		mailcowRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scim_bridge_mailcow_requests_total",
			Help: "Downstream mailcow API calls by endpoint and status code.",
		}, []string{"endpoint", "code"}),
	}

	reg.MustRegister(
		c.usersSynced,
		c.groupsSynced,
		c.adminsCreated,
		c.adminsDeleted,
		c.mailcowRequests,
	)

	return c
}

func (c *Collector) UserSynced() {
	c.usersSynced.Inc()
}

func (c *Collector) GroupSynced() {
	c.groupsSynced.Inc()
}

func (c *Collector) DomainAdminCreated() {
	c.adminsCreated.Inc()
}

func (c *Collector) DomainAdminDeleted() {
	c.adminsDeleted.Inc()
}

func (c *Collector) MailcowRequest(endpoint string, code int) {
	c.mailcowRequests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
}

// Handler exposes the registry in Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
