package simon

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/koscakluka/simon/core"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)

	roundsCompleted, _ = meter.Int64Counter(
		"simon.rounds.completed",
		metric.WithDescription("Rounds reproduced correctly"),
	)
	gesturesRecorded, _ = meter.Int64Counter(
		"simon.gestures.recorded",
		metric.WithDescription("Gestures appended to a guess"),
	)
)
