package integration

import (
	"context"
	"math/rand"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
	"github.com/sgostarter/libtabulated/functions"
)

type Runner interface {
	Run(ctx context.Context) (Report, error)
}

// NewRunner wires a generator and an integrator through an unbuffered
// channel: the generator blocks until the integrator has taken the previous
// task. onResult, if set, is called from the integrator routine.
func NewRunner(cfg Config, onResult func(Result), logger l.Wrapper) Runner {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	cfg.fix()

	return &runnerImpl{
		cfg:      cfg,
		onResult: onResult,
		logger:   logger.WithFields(l.StringField(l.ClsKey, "runnerImpl")),
	}
}

type runnerImpl struct {
	cfg      Config
	onResult func(Result)
	logger   l.Wrapper
}

func (impl *runnerImpl) Run(ctx context.Context) (report Report, err error) {
	tasks := make(chan Task)
	rnd := rand.New(rand.NewSource(impl.cfg.Seed)) // nolint: gosec

	var total time.Duration

	routineMan := routineman.NewRoutineMan(ctx, impl.logger)

	routineMan.StartRoutine(func(ctx context.Context, _ func() bool) {
		defer close(tasks)

		for report.Generated < impl.cfg.TaskCount {
			task := newTask(rnd)

			select {
			case <-ctx.Done():
				return
			case tasks <- task:
				report.Generated++
			}
		}
	}, "generatorRoutine")

	routineMan.StartRoutine(func(ctx context.Context, _ func() bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case task, ok := <-tasks:
				if !ok {
					return
				}

				result := impl.integrate(task)

				report.Processed++
				total += result.Duration

				if result.Err != nil {
					report.Failed++
				}

				if impl.onResult != nil {
					impl.onResult(result)
				}
			}
		}
	}, "integratorRoutine")

	routineMan.Wait()

	if report.Processed > 0 {
		report.MeanDuration = total / time.Duration(report.Processed)
	}

	if err = ctx.Err(); err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("processed", report.Processed)).
			Error("run interrupted")
	}

	return
}

func (impl *runnerImpl) integrate(task Task) Result {
	start := time.Now()
	value, err := functions.Integrate(task.Function, task.Left, task.Right, task.Step)

	result := Result{
		Task:     task,
		Value:    value,
		Err:      err,
		Duration: time.Since(start),
	}

	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.UInt64Field("taskID", task.ID)).Error("integrate failed")
	} else {
		impl.logger.WithFields(l.UInt64Field("taskID", task.ID)).Debug("integrated ", task, ": ", value)
	}

	return result
}

// newTask draws a logarithm base in [1, 10), left in [0, 100), right in
// [100, 200) and step in [0.001, 1).
func newTask(rnd *rand.Rand) Task {
	base := 1 + rnd.Float64()*9

	return Task{
		ID:       snowflake.ID(),
		Base:     base,
		Function: functions.Log(base),
		Left:     rnd.Float64() * 100,
		Right:    100 + rnd.Float64()*100,
		Step:     0.001 + rnd.Float64()*0.999,
	}
}
