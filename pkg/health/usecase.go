package health

import (
	"context"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
	// Components lists the names of the checked dependencies.
	Components() []string
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped so
// optional backends can be passed unconditionally.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

func (s *service) Components() []string {
	out := make([]string, 0, len(s.checkers))
	for _, ch := range s.checkers {
		out = append(out, ch.Name())
	}
	return out
}
