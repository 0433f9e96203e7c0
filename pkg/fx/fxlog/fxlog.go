package fxlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/fx3/pkg/fx"
	"github.com/ib-77/fx3/pkg/fx/task"
)

// Console builds a development console logger writing to stdout.
func Console() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// TeeEither logs whichever branch of a disjoint result is populated.
// The value itself is not altered; this is a pure side effect.
func TeeEither[E, T any](logger *zap.Logger, msg string, r fx.Either[E, T]) {
	teeDisjoint[T, E](logger, msg, r)
}

// TeeValidation logs a validation outcome, including every accumulated
// error on the invalid branch.
func TeeValidation[E, T any](logger *zap.Logger, msg string, v fx.Validation[E, T]) {
	teeAccumulating[T, E](logger, msg, v)
}

// TeeOutcome logs the outcome of one task run.
func TeeOutcome[T any](logger *zap.Logger, msg string, o task.Outcome[T]) {
	if fx.IsNil(logger) {
		return
	}

	if o.Err != nil {
		logger.Error(msg, zap.Error(o.Err))
		return
	}
	logger.Info(msg, zap.Any("value", o.Value))
}

func teeDisjoint[T, E any](logger *zap.Logger, msg string, r fx.Disjoint[T, E]) {
	if fx.IsNil(logger) {
		return
	}

	if r.IsRight() {
		logger.Info(msg,
			zap.Any("value", r.Value()),
			zap.Time("created_at", r.CreatedAt()))
		return
	}
	logger.Error(msg,
		zap.Any("err", r.Err()),
		zap.Time("created_at", r.CreatedAt()))
}

func teeAccumulating[T, E any](logger *zap.Logger, msg string, v fx.Accumulating[T, E]) {
	if fx.IsNil(logger) {
		return
	}

	if v.IsValid() {
		logger.Info(msg,
			zap.Any("value", v.Value()),
			zap.Time("created_at", v.CreatedAt()))
		return
	}

	errs := v.Errs()
	logger.Error(msg,
		zap.Any("errs", errs),
		zap.Int("count", len(errs)),
		zap.Time("created_at", v.CreatedAt()))
}
