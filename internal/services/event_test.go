package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo is an in-memory EventRepository for service tests.
type fakeEventRepo struct {
	events    map[string]*domain.Event
	order     []string
	createErr error
	listErr   error
	getErr    error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Event, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.events[id])
	}
	return out, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = uuid.NewString()
	stored := *e
	f.events[e.ID] = &stored
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id, title, description string, date *time.Time, location string) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.Title = title
	e.Description = description
	e.Date = date
	e.Location = location
	copied := *e
	return &copied, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) DeleteAll(ctx context.Context) error {
	f.events = make(map[string]*domain.Event)
	f.order = nil
	return nil
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		title    string
		date     string
		category string
		wantErr  error
		check    func(t *testing.T, e *domain.Event)
	}{
		{
			name:     "success with category",
			title:    "Hack Day",
			date:     "2026-05-01",
			category: "Hackathon",
			check: func(t *testing.T, e *domain.Event) {
				assert.NotEmpty(t, e.ID)
				assert.Equal(t, "Hackathon", e.Category)
				require.NotNil(t, e.Date)
				assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), *e.Date)
			},
		},
		{
			name:  "category defaults to General",
			title: "Open Mic",
			check: func(t *testing.T, e *domain.Event) {
				assert.Equal(t, "General", e.Category)
				assert.Nil(t, e.Date)
			},
		},
		{
			name:  "rfc3339 date accepted",
			title: "Panel",
			date:  "2026-03-19T15:00:00Z",
			check: func(t *testing.T, e *domain.Event) {
				require.NotNil(t, e.Date)
				assert.Equal(t, 15, e.Date.Hour())
			},
		},
		{
			name:    "missing title",
			title:   "  ",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unparseable date",
			title:   "Bad Date",
			date:    "next tuesday",
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEventRepo()
			svc := NewEventService(repo)

			event, err := svc.Create(ctx, tt.title, "", tt.date, "", tt.category)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, repo.events, "nothing may be persisted on validation failure")
				return
			}
			require.NoError(t, err)
			tt.check(t, event)
		})
	}
}

func TestEventService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, err := svc.Create(ctx, "Hack Day", "All-day hacking", "2026-05-01", "Lab 1", "Hackathon")
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestEventService_Get(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	t.Run("malformed id reads as not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "not-a-uuid")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid.NewString())
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		repo.getErr = errors.New("connection refused")
		defer func() { repo.getErr = nil }()
		_, err := svc.Get(ctx, uuid.NewString())
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_UpdateOverwritesAllFields(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, err := svc.Create(ctx, "Tech Expo", "Student projects", "2026-03-14", "Expo Ground", "Academic Project")
	require.NoError(t, err)

	// Omitted description, date, and location are overwritten, not merged.
	updated, err := svc.Update(ctx, created.ID, "Tech Expo 2.0", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Tech Expo 2.0", updated.Title)
	assert.Empty(t, updated.Description)
	assert.Nil(t, updated.Date)
	assert.Empty(t, updated.Location)
	assert.Equal(t, "Academic Project", updated.Category, "category is untouched by update")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.Update(ctx, "nope", "Title", "", "", "")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.NewString(), "Title", "", "", "")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.NewString(), "", "", "", "")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.NewString(), "Title", "", "31/02/2026", "")
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, err := svc.Create(ctx, "Hostel Coding Jam", "", "", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "malformed"), domain.ErrNotFound)
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	events, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, events)

	_, err = svc.Create(ctx, "First", "", "", "", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Second", "", "", "", "")
	require.NoError(t, err)

	events, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	repo.listErr = errors.New("connection refused")
	_, err = svc.List(ctx)
	require.Error(t, err)
}
