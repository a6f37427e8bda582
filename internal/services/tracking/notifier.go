package tracking

import (
	"context"

	"github.com/KirkDiggler/riftcustoms/internal/models"
	"github.com/KirkDiggler/riftcustoms/internal/services/result"
)

// noopNotifier drops every event
type noopNotifier struct{}

func (noopNotifier) GameUpdated(context.Context, *models.Game) {}

func (noopNotifier) ObservationUpdated(context.Context, *models.Game, *models.MatchObservation) {}

func (noopNotifier) ResultReady(context.Context, *result.ResolveOutput) {}

func (noopNotifier) TrackingFailed(context.Context, *models.Game, error) {}
