package moderation_fx

import (
	"go.uber.org/fx"

	"rentwise/internal/services"
)

var Module = fx.Provide(services.NewModerationService)
