package controllers_fx

import (
	"go.uber.org/fx"

	"safarsathi/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController))
