package main

import (
	"github.com/redis/go-redis/v9"

	"github.com/openjustice/courtadmin/modules/courts/infrastructure/factapi"
	"github.com/openjustice/courtadmin/modules/courts/presentation/controllers"
	"github.com/openjustice/courtadmin/modules/courts/services"
	"github.com/openjustice/courtadmin/pkg/application"
	"github.com/openjustice/courtadmin/pkg/configuration"
	"github.com/openjustice/courtadmin/pkg/editlock"
	"github.com/openjustice/courtadmin/pkg/eventbus"
	"github.com/openjustice/courtadmin/pkg/metrics"
	"github.com/openjustice/courtadmin/pkg/middleware"
	"github.com/openjustice/courtadmin/pkg/routing"
	"github.com/openjustice/courtadmin/pkg/server"
	"github.com/openjustice/courtadmin/pkg/session"
)

func main() {
	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	redisClient := redis.NewClient(&redis.Options{Addr: conf.RedisURL})
	defer redisClient.Close()

	sessionStore := session.NewRedisStore(redisClient, "session")
	lockStore := editlock.NewRedisLockStore(redisClient, conf.EditLock.KeyPrefix, conf.EditLock.TTL)

	escapeRoutes, err := routing.LoadEscapeRoutes(conf.EditLock.EscapeRoutesPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to load escape routes")
	}
	coordinator := editlock.NewCoordinator(lockStore, routing.NewEscapeMatcher(escapeRoutes), logger)

	publisher := eventbus.NewEventPublisher(logger)
	publisher.Subscribe(func(e services.CollectionReplaced) {
		logger.WithField("slug", e.Slug).
			WithField("tab", e.Tab).
			WithField("count", e.Count).
			Info("collection replaced")
	})
	publisher.Subscribe(func(e services.CourtRenamed) {
		logger.WithField("old_slug", e.OldSlug).
			WithField("new_slug", e.NewSlug).
			Info("court renamed")
	})

	client := factapi.New(conf.FactAPI.BaseURL, conf.FactAPI.Token, conf.FactAPI.Timeout)
	svc := services.NewCourtService(client, publisher)

	app := application.New(logger, publisher)
	app.RegisterMiddleware(
		middleware.WithLogger(logger),
		middleware.RequestParams(),
		middleware.Authorize(sessionStore),
		middleware.LockRelease(coordinator),
	)
	app.RegisterControllers(
		controllers.NewSessionController(sessionStore),
		controllers.NewListingController(svc),
		controllers.NewGeneralController(svc, coordinator),
		controllers.NewOpeningHoursController(svc, coordinator),
		controllers.NewContactsController(svc, coordinator),
		controllers.NewEmailsController(svc, coordinator),
		controllers.NewAdditionalLinksController(svc, coordinator),
		controllers.NewApplicationProgressionController(svc, coordinator),
		controllers.NewFacilitiesController(svc, coordinator),
		controllers.NewDXCodesController(svc, coordinator),
		controllers.NewAddressesController(svc, coordinator),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	srv := server.NewHTTPServer(app)

	logger.WithField("address", conf.SocketAddress).Info("listening")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
