package profile

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

const profileColumns = `id, username, full_name, age, gender, email, phone, occupation,
	city, state, country, postal_code, address, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`
			INSERT INTO user_profile
				(username, full_name, age, gender, email, phone, occupation, city, state, country, postal_code, address)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING `+profileColumns+`;`,
		p.Username, p.FullName, p.Age, p.Gender, p.Email, p.Phone, p.Occupation,
		p.City, p.State, p.Country, p.PostalCode, p.Address,
	)
	created, err := scanProfile(row)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrProfileExists
		}
		return nil, apperr.FromStore(fmt.Errorf("insert profile: %w", err))
	}

	span.SetAttributes(attribute.Int("profile.id", created.ID))

	return created, nil
}

func (r *Repo) Get(ctx context.Context, username string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := scanProfile(r.db.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM user_profile WHERE username = $1;`,
		username,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, apperr.FromStore(fmt.Errorf("get profile: %w", err))
	}

	return p, nil
}

// Update changes the non-nil fields of in and returns the updated profile.
func (r *Repo) Update(ctx context.Context, username string, in Input) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := scanProfile(r.db.QueryRow(
		ctx,
		`
			UPDATE user_profile SET
				full_name = COALESCE($2, full_name),
				age = COALESCE($3, age),
				gender = COALESCE($4, gender),
				email = COALESCE($5, email),
				phone = COALESCE($6, phone),
				occupation = COALESCE($7, occupation),
				city = COALESCE($8, city),
				state = COALESCE($9, state),
				country = COALESCE($10, country),
				postal_code = COALESCE($11, postal_code),
				address = COALESCE($12, address),
				updated_at = now()
			WHERE username = $1
			RETURNING `+profileColumns+`;`,
		username, in.FullName, in.Age, in.Gender, in.Email, in.Phone, in.Occupation,
		in.City, in.State, in.Country, in.PostalCode, in.Address,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, apperr.FromStore(fmt.Errorf("update profile: %w", err))
	}

	return p, nil
}

func (r *Repo) List(ctx context.Context) (_ []Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+profileColumns+` FROM user_profile ORDER BY username;`,
	)
	if err != nil {
		return nil, apperr.FromStore(fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	profiles := make([]Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("rows: %w", err))
	}

	span.SetAttributes(attribute.Int("profiles.count", len(profiles)))

	return profiles, nil
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	if err := row.Scan(
		&p.ID, &p.Username, &p.FullName, &p.Age, &p.Gender, &p.Email, &p.Phone, &p.Occupation,
		&p.City, &p.State, &p.Country, &p.PostalCode, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
