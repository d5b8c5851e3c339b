// Package app assembles the bridge: the SCIM resource server, bearer-token
// authorization, and the unauthenticated liveness and metrics endpoints.
package app

import (
	"context"
	"net/http"
	"os"

	"github.com/elimity-com/scim"
	"github.com/elimity-com/scim/optional"
	"github.com/elimity-com/scim/schema"
	"github.com/go-chi/chi/v5"
	"github.com/mailcow-tools/scim-bridge/pkg/app/handlers/groups"
	"github.com/mailcow-tools/scim-bridge/pkg/app/handlers/users"
	"github.com/mailcow-tools/scim-bridge/pkg/config"
	"github.com/mailcow-tools/scim-bridge/pkg/mailcow"
	"github.com/mailcow-tools/scim-bridge/pkg/metrics"
	"github.com/mailcow-tools/scim-bridge/pkg/reconcile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type SCIMServer struct {
	server *http.Server
	log    *zerolog.Logger
	cfg    *config.Config
}

func NewSCIMServer(cfg *config.Config) (*SCIMServer, error) {
	bridgeLogger := zerolog.New(os.Stderr).
		With().Timestamp().Logger().
		Level(cfg.Logging.LogLevelParsed)

	return &SCIMServer{
		log: &bridgeLogger,
		cfg: cfg,
	}, nil
}

func (s *SCIMServer) Run() error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              s.cfg.Server.ListenAddress,
		Handler:           handler,
		IdleTimeout:       s.cfg.Server.IdleTimeout,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
	}

	s.server = srv
	s.log.Info().Str("address", s.cfg.Server.ListenAddress).Msg("Starting SCIM bridge")

	return srv.ListenAndServe()
}

// Handler builds the full routing surface. Split out from Run so tests can
// mount the bridge on an httptest server.
func (s *SCIMServer) Handler() (http.Handler, error) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	mcClient := mailcow.NewClient(&s.cfg.Mailcow, s.log, &http.Client{}, collector)
	reconciler := reconcile.NewReconciler(s.cfg.Mailcow.AdminGroupName, mcClient, collector, s.log)

	resourceTypes, err := s.resourceTypes(mcClient, reconciler, collector)
	if err != nil {
		return nil, err
	}

	serverArgs := &scim.ServerArgs{
		ServiceProviderConfig: &scim.ServiceProviderConfig{
			DocumentationURI: optional.NewString("https://github.com/mailcow-tools/scim-bridge"),
			SupportPatch:     true,
			AuthenticationSchemes: []scim.AuthenticationScheme{
				{
					Type:        scim.AuthenticationTypeOauthBearerToken,
					Name:        "OAuth Bearer Token",
					Description: "Authentication scheme using the OAuth Bearer Token Standard",
					SpecURI:     optional.NewString("https://tools.ietf.org/html/rfc6750"),
				},
			},
		},
		ResourceTypes: resourceTypes,
	}

	scimServer, err := scim.NewServer(serverArgs)
	if err != nil {
		return nil, err
	}

	app := new(application)
	app.cfg = &s.cfg.Server.Auth

	router := chi.NewRouter()
	router.Get("/healthz", healthz)
	router.Method(http.MethodGet, "/metrics", metrics.Handler(registry))
	router.Mount("/", app.auth(scimServer.ServeHTTP))

	return router, nil
}

func (s *SCIMServer) Shutdown(ctx context.Context) error {
	if s.server != nil {
		s.log.Info().Msg("Shutting down SCIM bridge")
		return s.server.Shutdown(ctx)
	}

	return nil
}

func (s *SCIMServer) resourceTypes(
	mcClient *mailcow.Client,
	reconciler *reconcile.Reconciler,
	collector *metrics.Collector,
) ([]scim.ResourceType, error) {
	usersLogger := s.log.With().Str("component", "users").Logger()

	usersResourceHandler, err := users.NewUsersResourceHandler(&usersLogger, &s.cfg.Mailcow, mcClient, reconciler, collector)
	if err != nil {
		return nil, err
	}

	userHandler, err := NewResourceHandler(usersResourceHandler)
	if err != nil {
		return nil, err
	}

	userType := scim.ResourceType{
		ID:          optional.NewString("User"),
		Name:        "User",
		Endpoint:    "/Users",
		Description: optional.NewString("User Account"),
		Schema:      schema.CoreUserSchema(),
		Handler:     userHandler,
	}

	groupsLogger := s.log.With().Str("component", "groups").Logger()

	groupsResourceHandler, err := groups.NewGroupResourceHandler(&groupsLogger, reconciler)
	if err != nil {
		return nil, err
	}

	groupHandler, err := NewResourceHandler(groupsResourceHandler)
	if err != nil {
		return nil, err
	}

	groupType := scim.ResourceType{
		ID:          optional.NewString("Group"),
		Name:        "Group",
		Endpoint:    "/Groups",
		Description: optional.NewString("Group"),
		Schema:      schema.CoreGroupSchema(),
		Handler:     groupHandler,
	}

	return []scim.ResourceType{userType, groupType}, nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"running"}`))
}
