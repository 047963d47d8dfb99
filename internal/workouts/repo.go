package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/Varshini0817/Ject/internal/apperr"
	"github.com/Varshini0817/Ject/internal/telemetry/tracing"
	"github.com/Varshini0817/Ject/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetUser(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var u User
	err = r.db.QueryRow(
		ctx,
		`SELECT username, age, height, weight FROM workout_user WHERE username = $1;`,
		username,
	).Scan(&u.Username, &u.Age, &u.Height, &u.Weight)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, apperr.FromStore(fmt.Errorf("get user: %w", err))
	}

	return &u, nil
}

func (r *Repo) UserExists(ctx context.Context, username string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.userexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM workout_user WHERE username = $1);`,
		username,
	).Scan(&exists); err != nil {
		return false, apperr.FromStore(fmt.Errorf("user exists: %w", err))
	}

	return exists, nil
}

func (r *Repo) GetGoal(ctx context.Context, username, activity string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getgoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity", activity))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, username, activity, duration, distance, steps, updated_at
			FROM workout_goal
			WHERE username = $1 AND activity = $2;`,
		username, activity,
	)
	if err != nil {
		return nil, apperr.FromStore(fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	goals, err := r.rows2goals(rows)
	if err != nil {
		return nil, err
	}
	if len(goals) != 1 {
		return nil, ErrGoalNotFound
	}

	return &goals[0], nil
}

func (r *Repo) ListGoals(ctx context.Context, username string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listgoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, username, activity, duration, distance, steps, updated_at
			FROM workout_goal
			WHERE username = $1
			ORDER BY activity;`,
		username,
	)
	if err != nil {
		return nil, apperr.FromStore(fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	return r.rows2goals(rows)
}

// UpsertGoal creates the workout record of the user when missing and stores the goal,
// replacing all metrics of an existing goal for the same activity.
func (r *Repo) UpsertGoal(ctx context.Context, goal Goal, attrs UserAttrs) (_ *Goal, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.upsertgoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity", goal.Activity))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, apperr.FromStore(fmt.Errorf("begin tx: %w", err))
	}
	defer func() {
		// no-op once committed
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(
		ctx,
		`
			INSERT INTO workout_user (username, age, height, weight)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (username) DO UPDATE SET
				age = COALESCE(EXCLUDED.age, workout_user.age),
				height = COALESCE(EXCLUDED.height, workout_user.height),
				weight = COALESCE(EXCLUDED.weight, workout_user.weight);`,
		goal.Username, attrs.Age, attrs.Height, attrs.Weight,
	); err != nil {
		return nil, false, apperr.FromStore(fmt.Errorf("upsert user: %w", err))
	}

	if err := tx.QueryRow(
		ctx,
		`
			INSERT INTO workout_goal (username, activity, duration, distance, steps, updated_at)
				VALUES ($1, $2, $3, $4, $5, now())
			ON CONFLICT (username, activity) DO UPDATE SET
				duration = EXCLUDED.duration,
				distance = EXCLUDED.distance,
				steps = EXCLUDED.steps,
				updated_at = EXCLUDED.updated_at
			RETURNING id, updated_at, (xmax = 0) AS inserted;`,
		goal.Username, goal.Activity, goal.Duration, goal.Distance, goal.Steps,
	).Scan(&goal.ID, &goal.UpdatedAt, &created); err != nil {
		return nil, false, apperr.FromStore(fmt.Errorf("upsert goal: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, apperr.FromStore(fmt.Errorf("commit: %w", err))
	}

	span.SetAttributes(attribute.Int("goal.id", goal.ID), attribute.Bool("goal.created", created))

	return &goal, created, nil
}

// AddEntry stores a new entry. A second entry for the same user, activity and day is rejected
// by the unique constraint and reported as ErrDuplicateEntry.
func (r *Repo) AddEntry(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addentry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity", entry.Activity), attribute.String("date", entry.Date.String()))

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO workout_entry (username, activity, entry_date, duration, distance, steps)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at;`,
		entry.Username, entry.Activity, entry.Date.Time, entry.Duration, entry.Distance, entry.Steps,
	).Scan(&entry.ID, &entry.CreatedAt)
	switch {
	case err == nil:
	case pkg.IsUniqueViolationError(err):
		return nil, ErrDuplicateEntry
	case pkg.IsForeignKeyViolationError(err):
		return nil, ErrGoalMissing
	default:
		return nil, apperr.FromStore(fmt.Errorf("insert entry: %w", err))
	}

	span.SetAttributes(attribute.Int("entry.id", entry.ID))

	return &entry, nil
}

// ListEntries returns the entries matching params, oldest first. Empty fields do not filter.
// The date range is inclusive on both ends.
func (r *Repo) ListEntries(ctx context.Context, params EntryParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listentries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity", params.Activity))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, username, activity, entry_date, duration, distance, steps, created_at
			FROM workout_entry
				WHERE username = $1
				AND ($2::text = '' OR activity = $2)
				AND ($3::date IS NULL OR entry_date >= $3)
				AND ($4::date IS NULL OR entry_date <= $4)
			ORDER BY entry_date, id;`,
		params.Username, params.Activity,
		dateParam(params.From), dateParam(params.To),
	)
	if err != nil {
		return nil, apperr.FromStore(fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.Username, &e.Activity, &e.Date.Time,
			&e.Duration, &e.Distance, &e.Steps, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		e.Date = DateOf(e.Date.Time)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("rows: %w", err))
	}

	return entries, nil
}

func (r *Repo) rows2goals(rows pgx.Rows) ([]Goal, error) {
	goals := make([]Goal, 0)
	for rows.Next() {
		var g Goal
		if err := rows.Scan(
			&g.ID, &g.Username, &g.Activity, &g.Duration, &g.Distance, &g.Steps, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("rows: %w", err))
	}
	return goals, nil
}

func dateParam(d *Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}
