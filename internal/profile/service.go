package profile

import (
	"context"
	"strings"

	"github.com/Varshini0817/Ject/internal/apperr"
	"github.com/Varshini0817/Ject/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profile_test

type profilesRepo interface {
	Create(ctx context.Context, p Profile) (*Profile, error)
	Get(ctx context.Context, username string) (*Profile, error)
	Update(ctx context.Context, username string, in Input) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
}

type Service struct {
	repo  profilesRepo
	cache *Cache
}

func NewService(repo profilesRepo, cache *Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) Create(ctx context.Context, username string, in Input) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(username) == "" {
		return nil, apperr.Validation("username is required")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, in.NewProfile(username))
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(username)

	return p, nil
}

// Get reads through the cache. A row read before a concurrent update is returned
// but not cached.
func (s *Service) Get(ctx context.Context, username string) (*Profile, error) {
	if p, ok := s.cache.Get(username); ok {
		return p, nil
	}

	version := s.cache.Version(username)
	p, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	s.cache.SetIfUnchanged(p, version)

	return p, nil
}

func (s *Service) Update(ctx context.Context, username string, in Input) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		in.Email = &email
	}

	p, err := s.repo.Update(ctx, username, in)
	if err != nil {
		return nil, err
	}
	s.cache.Set(p)

	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	return s.repo.List(ctx)
}
