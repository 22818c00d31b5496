package common

import (
	"time"

	"github.com/rs/zerolog/log"
)

type Benchmarker struct {
	start time.Time
	label string
}

func RuntimeBenchmark[T any](label string, functionUnderTest func() (T, error)) (T, error) {
	benchmarker := NewBenchmarker(label)
	defer benchmarker.Close()
	return functionUnderTest()
}

func NewBenchmarker(label string) *Benchmarker {
	return &Benchmarker{time.Now(), label}
}

func (benchmarker *Benchmarker) Elapsed() time.Duration {
	return time.Since(benchmarker.start)
}

func (benchmarker *Benchmarker) Close() {
	log.Debug().Str("label", benchmarker.label).Dur("took", benchmarker.Elapsed()).Msg("Benchmark")
}
