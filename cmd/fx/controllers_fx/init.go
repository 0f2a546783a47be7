package controllers_fx

import (
	"go.uber.org/fx"

	"rentwise/internal/api"
	"rentwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewBuildingController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(api.NewRouter))
