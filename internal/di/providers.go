package di

import (
	"namecard/internal/providers"
	"namecard/internal/services"
)

// ProvideStatsSource narrows the recording service to the metrics-facing
// interface; wire cannot bind interface to interface on its own.
func ProvideStatsSource(service services.RecordingServiceInterface) providers.StatsSource {
	return service
}
