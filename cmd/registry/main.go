// Package main is the demo entry point of the school registry.
//
// It builds a registry from the environment, runs a short enrollment
// session and prints every course roll and student timetable to stdout.
// Domain events are logged as they happen.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alem-hub/school-registry/config"
	"github.com/alem-hub/school-registry/internal/domain/school"
	"github.com/alem-hub/school-registry/internal/domain/shared"
	"github.com/alem-hub/school-registry/internal/domain/student"
	"github.com/alem-hub/school-registry/internal/infrastructure/messaging"
	"github.com/alem-hub/school-registry/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Configuration is not known yet; report through a default logger.
		opts := logger.DefaultOptions()
		opts.Output = os.Stderr
		logger.New(opts).Fatal("load configuration", logger.Err(err))
	}

	level := cfg.Observability.LogLevel
	if cfg.App.Debug {
		level = logger.LevelDebug.String()
	}
	log := logger.Setup(os.Stderr, level, cfg.Observability.LogFormat)
	log.Info("starting school registry",
		logger.String("env", string(cfg.App.Environment)),
		logger.Int("lockers", cfg.School.Lockers),
	)

	if err := run(os.Stdout, cfg, log); err != nil {
		log.Fatal("registry session failed", logger.Err(err))
	}
}

// enrollment is one scripted step of the demo session.
type enrollment struct {
	student int
	course  shared.CourseCode
}

func run(out io.Writer, cfg *config.Config, log *logger.Logger) error {
	bus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{
		Logger:        log,
		EnableMetrics: true,
	})
	defer func() { _ = bus.Close() }()

	if err := bus.SubscribeAll(messaging.LoggingHandler(log)); err != nil {
		return fmt.Errorf("subscribe event logger: %w", err)
	}

	reg := school.New(
		school.WithLockers(cfg.School.Lockers),
		school.WithSequence(student.NewNumberSequence(shared.StudentNumber(uint(cfg.School.FirstStudentNumber)))),
		school.WithEventBus(bus),
		school.WithLogger(log),
	)

	codes := []shared.CourseCode{"MATH101", "PHYS200", "CHEM110"}
	for _, code := range codes {
		if !reg.AddCourse(code) {
			log.Warn("course not added", logger.CourseCode(code))
		}
	}

	names := []string{"Ada", "Brian", "Chen", "Dana"}
	numbers := make([]shared.StudentNumber, 0, len(names))
	for _, name := range names {
		n, err := reg.RegisterStudent(name)
		if err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
		numbers = append(numbers, n)
	}

	plan := []enrollment{
		{0, "MATH101"}, {0, "PHYS200"},
		{1, "MATH101"}, {1, "CHEM110"},
		{2, "PHYS200"},
		{3, "MATH101"}, {3, "CHEM110"}, {3, "PHYS200"},
	}
	for _, e := range plan {
		if err := reg.AddStudentToCourse(numbers[e.student], e.course); err != nil {
			return err
		}
	}

	for _, n := range numbers {
		ok, err := reg.AssignLocker(n)
		if err != nil {
			return err
		}
		if !ok {
			log.Warn("no locker for student", logger.StudentNumber(n))
		}
	}

	for _, code := range codes {
		if err := reg.PrintRoll(out, code); err != nil {
			return err
		}
	}
	for _, n := range numbers {
		if err := reg.PrintTimetable(out, n); err != nil {
			return err
		}
	}

	snap := bus.Metrics().Snapshot()
	log.Info("session complete",
		logger.Int64("events", snap.TotalPublished),
		logger.Int64("handler_failures", snap.HandlerFailures),
		logger.Int("lockers_left", reg.AvailableLockers()),
	)
	return nil
}
