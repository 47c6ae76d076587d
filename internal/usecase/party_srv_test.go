package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/dto/request"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"
	"github.com/Saleh-enab/Cinema-API/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type partyFixture struct {
	repo    *repository.Repository
	service PartyService
	movie   *entity.Movie
	base    time.Time
}

func newPartyFixture(t *testing.T) *partyFixture {
	t.Helper()
	ctx := context.Background()
	repo := newFakeRepository()
	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	movie := &entity.Movie{Base: entity.NewBase(), Name: "Dune", Genre: "Sci-Fi", Duration: 155, Year: 2021}
	require.NoError(t, repo.Movie.Create(ctx, movie))
	require.NoError(t, repo.Hall.Create(ctx, &entity.Hall{ID: "H1", CreatedAt: base}))

	return &partyFixture{
		repo:    repo,
		service: NewPartyService(repo, clock.NewFixed(base), testLogger()),
		movie:   movie,
		base:    base,
	}
}

func (fx *partyFixture) createRequest(start, end time.Time) *request.CreatePartyRequest {
	return &request.CreatePartyRequest{
		MovieID:     fx.movie.ID.String(),
		HallID:      "H1",
		StartTime:   start,
		EndTime:     end,
		TicketPrice: 15,
	}
}

func TestAddPartyValidatesReferences(t *testing.T) {
	fx := newPartyFixture(t)
	ctx := context.Background()

	t.Run("unknown movie", func(t *testing.T) {
		req := fx.createRequest(fx.base, fx.base.Add(2*time.Hour))
		req.MovieID = uuid.NewString()
		_, err := fx.service.AddParty(ctx, req)
		requireKind(t, err, apperror.KindNotFound)
	})

	t.Run("unknown hall", func(t *testing.T) {
		req := fx.createRequest(fx.base, fx.base.Add(2*time.Hour))
		req.HallID = "H9"
		_, err := fx.service.AddParty(ctx, req)
		requireKind(t, err, apperror.KindNotFound)
	})

	t.Run("inverted interval", func(t *testing.T) {
		req := fx.createRequest(fx.base.Add(2*time.Hour), fx.base)
		_, err := fx.service.AddParty(ctx, req)
		requireKind(t, err, apperror.KindAdmin)
	})
}

func TestAddPartyOverlap(t *testing.T) {
	fx := newPartyFixture(t)
	ctx := context.Background()

	_, err := fx.service.AddParty(ctx, fx.createRequest(fx.base, fx.base.Add(2*time.Hour)))
	require.NoError(t, err)

	t.Run("overlapping interval rejected", func(t *testing.T) {
		_, err := fx.service.AddParty(ctx, fx.createRequest(fx.base.Add(time.Hour), fx.base.Add(3*time.Hour)))
		requireKind(t, err, apperror.KindAdmin)
	})

	t.Run("containing interval rejected", func(t *testing.T) {
		_, err := fx.service.AddParty(ctx, fx.createRequest(fx.base.Add(-time.Hour), fx.base.Add(4*time.Hour)))
		requireKind(t, err, apperror.KindAdmin)
	})

	t.Run("back to back allowed", func(t *testing.T) {
		resp, err := fx.service.AddParty(ctx, fx.createRequest(fx.base.Add(2*time.Hour), fx.base.Add(4*time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, "Dune", resp.MovieName)
	})

	t.Run("other hall unaffected", func(t *testing.T) {
		require.NoError(t, fx.repo.Hall.Create(ctx, &entity.Hall{ID: "H2", CreatedAt: fx.base}))
		req := fx.createRequest(fx.base, fx.base.Add(2*time.Hour))
		req.HallID = "H2"
		_, err := fx.service.AddParty(ctx, req)
		require.NoError(t, err)
	})
}

// Two admins racing to book the same hall slot: exactly one wins, the
// loser gets the overlap rejection from the storage guard.
func TestAddPartyConcurrentSameSlot(t *testing.T) {
	fx := newPartyFixture(t)
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.AddParty(ctx, fx.createRequest(fx.base, fx.base.Add(2*time.Hour)))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, adminErrors int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case apperror.IsKind(err, apperror.KindAdmin):
			adminErrors++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, adminErrors)
}

func TestUpdatePartyExcludesOwnInterval(t *testing.T) {
	fx := newPartyFixture(t)
	ctx := context.Background()

	created, err := fx.service.AddParty(ctx, fx.createRequest(fx.base, fx.base.Add(2*time.Hour)))
	require.NoError(t, err)

	// Shifting a party within its own slot must not conflict with itself.
	newStart := fx.base.Add(30 * time.Minute)
	newEnd := fx.base.Add(150 * time.Minute)
	updated, err := fx.service.UpdateParty(ctx, created.ID, &request.UpdatePartyRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	require.NoError(t, err)
	assert.True(t, updated.StartTime.Equal(newStart))
	assert.True(t, updated.EndTime.Equal(newEnd))

	// The update timestamp comes from the injected clock.
	stored, err := fx.repo.Party.FindByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.True(t, stored.UpdatedAt.Equal(fx.base))

	// But moving onto another party's slot still fails.
	_, err = fx.service.AddParty(ctx, fx.createRequest(fx.base.Add(3*time.Hour), fx.base.Add(5*time.Hour)))
	require.NoError(t, err)

	clashStart := fx.base.Add(4 * time.Hour)
	clashEnd := fx.base.Add(6 * time.Hour)
	_, err = fx.service.UpdateParty(ctx, created.ID, &request.UpdatePartyRequest{
		StartTime: &clashStart,
		EndTime:   &clashEnd,
	})
	requireKind(t, err, apperror.KindAdmin)
}

func TestDeletePartyGuard(t *testing.T) {
	fx := newPartyFixture(t)
	ctx := context.Background()

	created, err := fx.service.AddParty(ctx, fx.createRequest(fx.base, fx.base.Add(2*time.Hour)))
	require.NoError(t, err)
	partyID := uuid.MustParse(created.ID)

	require.NoError(t, fx.repo.Reservation.Create(ctx, &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: fx.base},
		CustomerID: uuid.New(),
		PartyID:    partyID,
		SeatID:     "H1 - A1",
	}))

	// The guard holds regardless of how often the delete is retried.
	for i := 0; i < 3; i++ {
		err := fx.service.DeleteParty(ctx, created.ID)
		requireKind(t, err, apperror.KindAdmin)
	}

	require.NoError(t, fx.repo.Reservation.Delete(ctx, mustFirstReservationID(t, fx.repo, partyID)))
	require.NoError(t, fx.service.DeleteParty(ctx, created.ID))

	err = fx.service.DeleteParty(ctx, created.ID)
	requireKind(t, err, apperror.KindNotFound)
}

func mustFirstReservationID(t *testing.T, repo *repository.Repository, partyID uuid.UUID) uuid.UUID {
	t.Helper()
	seatIDs, err := repo.Reservation.FindReservedSeatIDsByParty(context.Background(), partyID)
	require.NoError(t, err)
	require.NotEmpty(t, seatIDs)
	res, err := repo.Reservation.FindByPartyAndSeat(context.Background(), partyID, seatIDs[0])
	require.NoError(t, err)
	require.NotNil(t, res)
	return res.ID
}

func TestGetPartiesPaginated(t *testing.T) {
	fx := newPartyFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		start := fx.base.Add(time.Duration(i*3) * time.Hour)
		_, err := fx.service.AddParty(ctx, fx.createRequest(start, start.Add(2*time.Hour)))
		require.NoError(t, err)
	}

	page, err := fx.service.GetParties(ctx, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	for _, item := range page.Data {
		assert.Equal(t, "Dune", item.MovieName)
	}
}
