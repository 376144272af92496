package router

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/oksasatya/famjamjam/internal/application"
	"github.com/oksasatya/famjamjam/internal/container"
	"github.com/oksasatya/famjamjam/internal/infrastructure/search"
	"github.com/oksasatya/famjamjam/internal/infrastructure/supabase"
	handlers "github.com/oksasatya/famjamjam/internal/interface/http"
	"github.com/oksasatya/famjamjam/internal/router/modules"
)

type Services struct {
	Profiles    *application.ProfileService
	Groups      *application.GroupService
	Events      *application.EventService
	Preferences *application.PreferencesService
}

// buildServices reads through the browser handle and writes through the server handle.
func buildServices() Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	browser, server := container.GetBrowserDB(), container.GetServerDB()

	profileRepo := supabase.NewProfileRepository(server)
	groupReader := supabase.NewGroupRepository(browser)
	groupWriter := supabase.NewGroupRepository(server)
	eventReader := supabase.NewEventRepository(browser)
	eventWriter := supabase.NewEventRepository(server)

	var pub application.Publisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	var index application.GroupIndex
	if es := container.GetES(); es != nil {
		index = search.NewGroupIndex(es, cfg.ESGroupsIndex)
	}
	indexer := application.NewDebouncedIndexer(index, cfg.SearchIndexDelay, clockwork.NewRealClock(), logger)

	profiles := application.NewProfileService(profileRepo, container.GetUploader(), pub, logger)
	profiles.Reader = supabase.NewProfileRepository(browser)

	prefs := application.NewPreferencesService(container.GetStorage(), logger)
	return Services{
		Profiles:    profiles,
		Groups:      application.NewGroupService(groupReader, groupWriter, index, indexer, logger),
		Events:      application.NewEventService(eventReader, eventWriter, groupReader, profileRepo, prefs, pub, logger),
		Preferences: prefs,
	}
}

func healthChecks() map[string]handlers.Check {
	checks := map[string]handlers.Check{}
	if pool := container.GetPGPool(); pool != nil {
		checks["postgres"] = pool.Ping
	}
	if rdb := container.GetRedis(); rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return checks
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	rdb := container.GetRedis()
	svc := buildServices()

	r.Add(modules.NewSystemModule(handlers.NewSystemHandler(healthChecks(), logger)))
	r.Add(modules.NewGroupModule(handlers.NewGroupHandler(svc.Groups, svc.Events, logger), jwt, rdb, logger))
	r.Add(modules.NewProfileModule(
		handlers.NewProfileHandler(svc.Profiles, logger),
		handlers.NewPreferencesHandler(svc.Preferences, logger),
		jwt,
		rdb,
		logger,
	))
	r.Add(modules.NewSessionModule(handlers.NewSessionHandler(jwt, cfg.CookieDomain, cfg.CookieSecure), rdb))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
