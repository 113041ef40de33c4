//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"namecard/internal"
	"namecard/internal/backup"
	"namecard/internal/controllers"
	"namecard/internal/models"
	"namecard/internal/providers"
	"namecard/internal/services"
	"namecard/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewClockProvider,
		providers.NewAuthProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		models.OpenDatabase,
		models.NewLocationStore,
		models.NewSessionStore,

		services.NewRecordingService,
		services.NewCardService,
		ProvideStatsSource,

		backup.NewZstdCompressor,
		backup.NewSnapshotWriter,
		backup.NewScheduler,

		controllers.NewApiController,
		controllers.NewAdminController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
