package integration

import (
	"fmt"
	"time"

	"github.com/sgostarter/libtabulated/tabulated"
)

const defaultTaskCount = 100

type Config struct {
	TaskCount int   `yaml:"task_count" json:"task_count"`
	Seed      int64 `yaml:"seed" json:"seed"`
}

func (cfg *Config) fix() {
	if cfg.TaskCount <= 0 {
		cfg.TaskCount = defaultTaskCount
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
}

// Task asks for the integral of Function over [Left, Right].
type Task struct {
	ID       uint64
	Base     float64
	Function tabulated.Function
	Left     float64
	Right    float64
	Step     float64
}

func (t Task) String() string {
	return fmt.Sprintf("#%d log%.3f [%.6f, %.6f] step %.6f", t.ID, t.Base, t.Left, t.Right, t.Step)
}

type Result struct {
	Task     Task
	Value    float64
	Err      error
	Duration time.Duration
}

type Report struct {
	Generated    int
	Processed    int
	Failed       int
	MeanDuration time.Duration
}
