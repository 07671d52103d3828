package components

import (
	"log/slog"

	"snoozetax/internal/domain/schedule"
	"snoozetax/internal/infra/dispatch"
	"snoozetax/internal/pkg/config"
	"snoozetax/internal/scheduling"
	"snoozetax/internal/usecase"

	"go.uber.org/fx"
)

var SchedulingModule = fx.Module("scheduling",
	fx.Provide(
		NewPlanner,
		NewTuning,
		NewDispatcher,
		fx.Annotate(
			scheduling.NewScheduler,
			fx.As(new(usecase.AlarmScheduler)),
		),
	),
)

func NewPlanner(cfg config.Config) *schedule.Planner {
	return schedule.NewPlanner(schedule.PlannerConfig{
		BurstDuration:      cfg.Scheduling.BurstDuration,
		LongSoundInterval:  cfg.Scheduling.LongSoundInterval,
		ShortSoundInterval: cfg.Scheduling.ShortSoundInterval,
		MaxItems:           cfg.Scheduling.MaxBurstItems,
	})
}

func NewTuning(cfg config.Config) schedule.Tuning {
	return schedule.Tuning{
		GraceWindow:    cfg.Scheduling.GraceWindow,
		ImmediateDelay: cfg.Scheduling.ImmediateDelay,
	}
}

func NewDispatcher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) scheduling.Dispatcher {
	dispatch.SetForegroundPresentation(cfg.Scheduling.ForegroundPresentation)
	d := dispatch.NewMemoryDispatcher(logger, nil)
	lc.Append(fx.StopHook(d.Close))
	return d
}
