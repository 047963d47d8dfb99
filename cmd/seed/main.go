package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Varshini0817/Ject/internal"
	"github.com/Varshini0817/Ject/internal/config"
	"github.com/Varshini0817/Ject/internal/db"
	"github.com/Varshini0817/Ject/internal/logging"
	"github.com/Varshini0817/Ject/internal/profile"
	"github.com/Varshini0817/Ject/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type seedUser struct {
	username string
	goals    []workouts.GoalInput
	entries  []workouts.EntryInput
	profile  *profile.Input
}

func goal(activity string, duration, distance float64, steps int) workouts.GoalInput {
	return workouts.GoalInput{
		Activity: activity,
		Metrics:  workouts.Metrics{Duration: duration, Distance: distance, Steps: steps},
	}
}

func entry(activity, date string, duration, distance float64, steps int) workouts.EntryInput {
	return workouts.EntryInput{
		Activity: activity,
		Date:     date,
		Metrics:  workouts.Metrics{Duration: duration, Distance: distance, Steps: steps},
	}
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func demoUsers() []seedUser {
	return []seedUser{
		{
			username: "John Doe",
			goals: []workouts.GoalInput{
				goal("Running", 30, 5, 0),
				goal("Gym", 60, 0, 0),
				goal("Hiking", 90, 8, 0),
			},
			entries: []workouts.EntryInput{
				entry("Running", "2025-11-19T07:00:00Z", 32, 5.2, 0),
				entry("Gym", "2025-11-15T18:30:00Z", 65, 0, 0),
				entry("Hiking", "2025-11-21T10:00:00Z", 95, 8.5, 0),
			},
			profile: &profile.Input{
				FullName:   str("John Doe"),
				Email:      str("john_doe@gmail.com"),
				Age:        num(25),
				Gender:     str("Male"),
				Phone:      str("9876543210"),
				Occupation: str("Software Engineer"),
				City:       str("Bengaluru"),
				State:      str("Karnataka"),
				Country:    str("India"),
				PostalCode: str("560037"),
				Address:    str("HSR Layout"),
			},
		},
		{
			username: "Jane Smith",
			goals: []workouts.GoalInput{
				goal("Cycling", 0, 22, 0),
				goal("Walking", 0, 6, 8000),
				goal("Yoga", 45, 0, 0),
			},
			entries: []workouts.EntryInput{
				entry("Cycling", "2025-11-18T17:30:00Z", 45, 20, 0),
				entry("Walking", "2025-11-16T09:00:00Z", 50, 6.5, 8500),
				entry("Yoga", "2025-11-13T08:00:00Z", 50, 0, 0),
			},
			profile: &profile.Input{
				FullName:   str("Jane Smith"),
				Email:      str("jane_smith@gmail.com"),
				Age:        num(30),
				Gender:     str("Female"),
				Phone:      str("9123456780"),
				Occupation: str("Doctor"),
				City:       str("Mumbai"),
				State:      str("Maharashtra"),
				Country:    str("India"),
				PostalCode: str("400001"),
				Address:    str("Marine Drive"),
			},
		},
		{
			username: "Alice Johnson",
			goals: []workouts.GoalInput{
				goal("Skipping", 15, 0, 1200),
				goal("Hiking", 120, 10, 0),
				goal("Yoga", 50, 0, 0),
			},
			entries: []workouts.EntryInput{
				entry("Skipping", "2025-11-20T12:00:00Z", 18, 0, 1300),
				entry("Hiking", "2025-11-14T10:00:00Z", 125, 10.5, 0),
				entry("Yoga", "2025-11-22T08:00:00Z", 55, 0, 0),
			},
		},
	}
}

func fakeProfile() (string, profile.Input) {
	person := gofakeit.Person()
	fullName := person.FirstName + " " + person.LastName
	return gofakeit.Username(), profile.Input{
		FullName:   str(fullName),
		Email:      str(person.Contact.Email),
		Age:        num(gofakeit.Number(18, 80)),
		Gender:     str(person.Gender),
		Phone:      str(person.Contact.Phone),
		Occupation: str(person.Job.Title),
		City:       str(person.Address.City),
		State:      str(person.Address.State),
		Country:    str(person.Address.Country),
		PostalCode: str(person.Address.Zip),
		Address:    str(person.Address.Street),
	}
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	fakeCount := flag.Int("fake", 0, "number of additional fake profiles to create")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, cfg, *fakeCount); err != nil {
		log.Errorf("seed: %s", err)
		os.Exit(1)
	}
	log.Println("seed done")
}

func run(ctx context.Context, cfg *config.Config, fakeCount int) error {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("HEALTHPULSE_POSTGRES_PASS"),
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		return err
	}

	catalog, err := internal.BuildCatalog(cfg.Activities)
	if err != nil {
		return fmt.Errorf("activity catalog: %w", err)
	}
	location, err := cfg.Location()
	if err != nil {
		return err
	}

	workoutsService := workouts.NewService(workouts.NewServiceParams{
		Repo:     workouts.NewRepo(dbPool),
		Catalog:  catalog,
		Location: location,
	})
	profileService := profile.NewService(profile.NewRepo(dbPool), profile.NewCache(1))

	var seedErr error
	for _, u := range demoUsers() {
		seedErr = multierr.Append(seedErr, seedWorkouts(ctx, workoutsService, u))
		if u.profile != nil {
			seedErr = multierr.Append(seedErr, seedProfile(ctx, profileService, u.username, *u.profile))
		}
	}

	for i := 0; i < fakeCount; i++ {
		username, in := fakeProfile()
		seedErr = multierr.Append(seedErr, seedProfile(ctx, profileService, username, in))
	}

	return seedErr
}

func seedWorkouts(ctx context.Context, service *workouts.Service, u seedUser) error {
	var err error
	for _, g := range u.goals {
		if _, _, goalErr := service.SetGoal(ctx, u.username, g); goalErr != nil {
			err = multierr.Append(err, fmt.Errorf("goal %s/%s: %w", u.username, g.Activity, goalErr))
		}
	}

	for _, e := range u.entries {
		_, entryErr := service.RecordEntry(ctx, u.username, e)
		switch {
		case entryErr == nil:
			log.Debugf("entry added: %s / %s / %s", u.username, e.Activity, e.Date)
		case errors.Is(entryErr, workouts.ErrDuplicateEntry):
			log.Debugf("entry exists, skipping: %s / %s / %s", u.username, e.Activity, e.Date)
		default:
			err = multierr.Append(err, fmt.Errorf("entry %s/%s: %w", u.username, e.Activity, entryErr))
		}
	}

	log.Printf("seeded workouts of [%s]: %d goals, %d entries", u.username, len(u.goals), len(u.entries))
	return err
}

func seedProfile(ctx context.Context, service *profile.Service, username string, in profile.Input) error {
	_, err := service.Create(ctx, username, in)
	switch {
	case err == nil:
		log.Printf("profile created: %s", username)
		return nil
	case errors.Is(err, profile.ErrProfileExists):
		log.Debugf("profile exists, skipping: %s", username)
		return nil
	default:
		return fmt.Errorf("profile %s: %w", username, err)
	}
}
