package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"safarsathi/internal/services"
	"safarsathi/pkg/utils"
)

var Module = fx.Provide(
	provideTripService, provideItineraryService)

func provideTripService() services.TripServiceInterface {
	return services.NewTripService()
}

func provideItineraryService(client utils.TextGenerationClientInterface, logger *zap.Logger) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, logger.Named("itinerary"))
}
