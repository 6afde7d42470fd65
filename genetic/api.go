package genetic

import (
	"context"

	"github.com/kiwicayne/studentscheduling/domain"
	"github.com/kiwicayne/studentscheduling/enroll"
)

// CreateSchedule evolves a population of full block schedules and returns
// the fittest one found, along with stats describing how the run
// converged.
func CreateSchedule(ctx context.Context, block domain.Block, house domain.House, attendance *domain.AttendanceRecord, enroller enroll.Enroller, opts ...Option) (domain.BlockSchedule, Stats, error) {
	cfg := NewConfig(opts...)
	factory := NewScheduleFactory(block, house, attendance, enroller)
	engine := NewEngine[*ScheduleGenome](factory, cfg)
	best, stats, err := engine.Run(ctx)
	if err != nil {
		return domain.BlockSchedule{}, Stats{}, err
	}
	return best.Schedule, stats, nil
}

// CreateGrouping evolves a population of student/mentor groupings and
// returns the fittest one found. Groupings mutate five times more often
// than schedules by default, per the scale the two searches were tuned at.
func CreateGrouping(ctx context.Context, mentors []string, students []domain.Student, opts ...Option) (domain.House, Stats, error) {
	cfg := NewConfig(append([]Option{WithMutationChance(0.05)}, opts...)...)
	factory := NewGroupingFactory(mentors, students)
	engine := NewEngine[*GroupingGenome](factory, cfg)
	best, stats, err := engine.Run(ctx)
	if err != nil {
		return domain.House{}, Stats{}, err
	}
	return best.House, stats, nil
}
