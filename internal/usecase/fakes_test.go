package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Saleh-enab/Cinema-API/internal/data/entity"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories backing the service tests. They enforce the same
// constraints the database does (unique email, unique (party_id, seat_id),
// hall interval exclusion) under a mutex so concurrency tests exercise the
// real winner-takes-all behavior.

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		Movie:       &fakeMovieRepo{movies: map[uuid.UUID]*entity.Movie{}},
		Hall:        &fakeHallRepo{halls: map[string]*entity.Hall{}},
		Seat:        &fakeSeatRepo{seats: map[string]*entity.Seat{}},
		Party:       &fakePartyRepo{parties: map[uuid.UUID]*entity.Party{}},
		Customer:    &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{}},
		Reservation: &fakeReservationRepo{reservations: map[uuid.UUID]*entity.Reservation{}},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*entity.Movie
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movies {
		if m.Name == movie.Name {
			return apperror.Admin("A movie with this name already exists")
		}
	}
	cp := *movie
	r.movies[movie.ID] = &cp
	return nil
}

func (r *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovieRepo) FindByName(ctx context.Context, name string) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movies {
		if m.Name == name {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovieRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		cp := *m
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

func (r *fakeMovieRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.movies)), nil
}

func (r *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[movie.ID]; !ok {
		return apperror.NotFound("Movie not found")
	}
	cp := *movie
	r.movies[movie.ID] = &cp
	return nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[id]; !ok {
		return apperror.NotFound("Movie not found")
	}
	delete(r.movies, id)
	return nil
}

type fakeHallRepo struct {
	mu    sync.Mutex
	halls map[string]*entity.Hall
}

func (r *fakeHallRepo) Create(ctx context.Context, hall *entity.Hall) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.halls[hall.ID]; ok {
		return apperror.Admin("A hall with this ID already exists")
	}
	cp := *hall
	r.halls[hall.ID] = &cp
	return nil
}

func (r *fakeHallRepo) FindByID(ctx context.Context, id string) (*entity.Hall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.halls[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *fakeHallRepo) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Hall, 0, len(r.halls))
	for _, h := range r.halls {
		cp := *h
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeHallRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.halls[id]; !ok {
		return apperror.NotFound("Hall not found")
	}
	delete(r.halls, id)
	return nil
}

type fakeSeatRepo struct {
	mu    sync.Mutex
	seats map[string]*entity.Seat
}

func (r *fakeSeatRepo) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range seats {
		if _, ok := r.seats[s.ID]; ok {
			return apperror.Admin("Hall already has seats provisioned")
		}
	}
	for _, s := range seats {
		cp := *s
		r.seats[s.ID] = &cp
	}
	return nil
}

func (r *fakeSeatRepo) FindByID(ctx context.Context, id string) (*entity.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.seats[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSeatRepo) FindByHallID(ctx context.Context, hallID string) ([]*entity.Seat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Seat
	for _, s := range r.seats {
		if s.HallID == hallID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSeatRepo) CountByHallID(ctx context.Context, hallID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.seats {
		if s.HallID == hallID {
			n++
		}
	}
	return n, nil
}

type fakePartyRepo struct {
	mu      sync.Mutex
	parties map[uuid.UUID]*entity.Party
}

func (r *fakePartyRepo) Create(ctx context.Context, party *entity.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.parties {
		if p.HallID == party.HallID && p.Overlaps(party.StartTime, party.EndTime) {
			return apperror.Admin("Hall is already booked during this time")
		}
	}
	cp := *party
	r.parties[party.ID] = &cp
	return nil
}

func (r *fakePartyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.parties[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePartyRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Party, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Party, 0, len(r.parties))
	for _, p := range r.parties {
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StartTime.Before(all[j].StartTime) })
	return paginate(all, limit, offset), nil
}

func (r *fakePartyRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.parties)), nil
}

func (r *fakePartyRepo) HasOverlap(ctx context.Context, hallID string, startTime, endTime time.Time, excludeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.parties {
		if p.HallID != hallID || p.ID == excludeID {
			continue
		}
		if p.Overlaps(startTime, endTime) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePartyRepo) Update(ctx context.Context, party *entity.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parties[party.ID]; !ok {
		return apperror.NotFound("Party not found")
	}
	for _, p := range r.parties {
		if p.ID != party.ID && p.HallID == party.HallID && p.Overlaps(party.StartTime, party.EndTime) {
			return apperror.Admin("Hall is already booked during this time")
		}
	}
	cp := *party
	r.parties[party.ID] = &cp
	return nil
}

func (r *fakePartyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parties[id]; !ok {
		return apperror.NotFound("Party not found")
	}
	delete(r.parties, id)
	return nil
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*entity.Customer
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Email == customer.Email {
			return apperror.Client("A customer with this email already exists")
		}
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.RefreshTokenHash != nil && *c.RefreshTokenHash == tokenHash {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return apperror.NotFound("Customer not found")
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return apperror.NotFound("Customer not found")
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) ResetPassword(ctx context.Context, email, tokenHash, newPasswordHash string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Email != email {
			continue
		}
		if c.ResetTokenHash == nil || *c.ResetTokenHash != tokenHash {
			return false, nil
		}
		if c.ResetExpiration == nil || !c.ResetExpiration.After(now) {
			return false, nil
		}
		c.PasswordHash = newPasswordHash
		c.ResetTokenHash = nil
		c.ResetExpiration = nil
		return true, nil
	}
	return false, nil
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]*entity.Reservation
}

func (r *fakeReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if res.PartyID == reservation.PartyID && res.SeatID == reservation.SeatID {
			return apperror.Client("Seat is already reserved for this party")
		}
	}
	cp := *reservation
	r.reservations[reservation.ID] = &cp
	return nil
}

func (r *fakeReservationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, nil
	}
	cp := *res
	return &cp, nil
}

func (r *fakeReservationRepo) FindByPartyAndSeat(ctx context.Context, partyID uuid.UUID, seatID string) (*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.reservations {
		if res.PartyID == partyID && res.SeatID == seatID {
			cp := *res
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeReservationRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Reservation
	for _, res := range r.reservations {
		if res.CustomerID == customerID {
			cp := *res
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeReservationRepo) FindReservedSeatIDsByParty(ctx context.Context, partyID uuid.UUID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, res := range r.reservations {
		if res.PartyID == partyID {
			out = append(out, res.SeatID)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeReservationRepo) CountByPartyID(ctx context.Context, partyID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, res := range r.reservations {
		if res.PartyID == partyID {
			n++
		}
	}
	return n, nil
}

func (r *fakeReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reservations[id]; !ok {
		return apperror.NotFound("Reservation not found")
	}
	delete(r.reservations, id)
	return nil
}

func paginate[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
