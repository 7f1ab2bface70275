//go:build unit

package fakeuow

import (
	"context"
	"maps"
	"sync"
	"time"

	"fitness-booking/internal/domain/fitnessclass"
	"fitness-booking/internal/domain/member"
	"fitness-booking/internal/domain/reservation"
	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OutboxEvent struct {
	Topic   string
	Payload []byte
	At      time.Time
}

// Store is an in-memory UnitOfWork. Transactions run one at a time and a failed
// transaction restores the state it started from.
type Store struct {
	mu sync.Mutex

	Members      map[uuid.UUID]shared.MemberSnapshot
	Classes      map[uuid.UUID]shared.ClassSnapshot
	Reservations map[uuid.UUID]shared.ReservationSnapshot
	Idempotency  map[uuid.UUID]shared.IdempotencyRecord
	Outbox       []OutboxEvent

	// FailOn makes the named write fail with the given error
	FailOn map[string]error
}

func New() *Store {
	return &Store{
		Members:      map[uuid.UUID]shared.MemberSnapshot{},
		Classes:      map[uuid.UUID]shared.ClassSnapshot{},
		Reservations: map[uuid.UUID]shared.ReservationSnapshot{},
		Idempotency:  map[uuid.UUID]shared.IdempotencyRecord{},
		FailOn:       map[string]error{},
	}
}

func (s *Store) AddMember(m *shared.MemberSnapshot) { s.Members[m.ID] = *m }

func (s *Store) AddClass(c *shared.ClassSnapshot) { s.Classes[c.ID] = *c }

func (s *Store) AddReservation(r *shared.ReservationSnapshot) { s.Reservations[r.ID] = *r }

func (s *Store) ActiveCount(classID uuid.UUID) int {
	n := 0
	for _, r := range s.Reservations {
		if r.ClassID == classID && r.Status == reservation.StatusConfirmed.String() {
			n++
		}
	}
	return n
}

type state struct {
	members      map[uuid.UUID]shared.MemberSnapshot
	classes      map[uuid.UUID]shared.ClassSnapshot
	reservations map[uuid.UUID]shared.ReservationSnapshot
	idempotency  map[uuid.UUID]shared.IdempotencyRecord
	outbox       []OutboxEvent
}

func (s *Store) save() state {
	return state{
		members:      maps.Clone(s.Members),
		classes:      maps.Clone(s.Classes),
		reservations: maps.Clone(s.Reservations),
		idempotency:  maps.Clone(s.Idempotency),
		outbox:       append([]OutboxEvent(nil), s.Outbox...),
	}
}

func (s *Store) restore(st state) {
	s.Members = st.members
	s.Classes = st.classes
	s.Reservations = st.reservations
	s.Idempotency = st.idempotency
	s.Outbox = st.outbox
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.save()
	if err := fn(ctx, &fakeTx{s: s}); err != nil {
		s.restore(st)
		return err
	}
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &fakeTx{s: s}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

type fakeTx struct {
	s *Store
}

func (t *fakeTx) Members() shared.MemberRepository           { return t }
func (t *fakeTx) Classes() shared.ClassRepository            { return classRepo{t.s} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository  { return idempotencyRepo{t.s} }
func (t *fakeTx) Outbox() shared.OutboxRepository            { return outboxRepo{t.s} }
func (t *fakeTx) Reads() shared.CommandReads                 { return t }
func (t *fakeTx) DB() query.DBTX                             { return nil }

func (t *fakeTx) Create(_ context.Context, _ query.DBTX, m *member.Member) error {
	if err := t.s.FailOn["members.create"]; err != nil {
		return err
	}
	t.s.Members[m.ID()] = shared.MemberSnapshot{
		ID:         m.ID(),
		Name:       m.Name().Value(),
		Membership: m.Membership().String(),
		CreatedAt:  m.CreatedAt(),
	}
	return nil
}

func (t *fakeTx) MemberByID(_ context.Context, id uuid.UUID) (*shared.MemberSnapshot, error) {
	m, ok := t.s.Members[id]
	if !ok {
		return nil, notFound("member")
	}
	return &m, nil
}

func (t *fakeTx) ClassByID(_ context.Context, id uuid.UUID) (*shared.ClassSnapshot, error) {
	c, ok := t.s.Classes[id]
	if !ok {
		return nil, notFound("class")
	}
	return &c, nil
}

func (t *fakeTx) ClassByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.ClassSnapshot, error) {
	return t.ClassByID(ctx, id)
}

func (t *fakeTx) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	r, ok := t.s.Reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return &r, nil
}

func (t *fakeTx) ReservationByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	return t.ReservationByID(ctx, id)
}

func (t *fakeTx) CountActiveReservations(_ context.Context, classID uuid.UUID) (int, error) {
	return t.s.ActiveCount(classID), nil
}

func (t *fakeTx) IdempotencyByKey(_ context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := t.s.Idempotency[key]
	if !ok {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}

type classRepo struct{ s *Store }

func (r classRepo) Create(_ context.Context, _ query.DBTX, c *fitnessclass.FitnessClass) error {
	if err := r.s.FailOn["classes.create"]; err != nil {
		return err
	}
	r.s.Classes[c.ID()] = shared.ClassSnapshot{
		ID:         c.ID(),
		Name:       c.Name().Value(),
		Instructor: c.Instructor().Value(),
		Capacity:   c.Capacity().Value(),
		StartsAt:   c.StartsAt(),
		BasePrice:  c.BasePrice().Value(),
		CreatedAt:  c.CreatedAt(),
	}
	return nil
}

type reservationRepo struct{ s *Store }

func toSnapshot(res *reservation.Reservation) shared.ReservationSnapshot {
	p := res.Pricing()
	snap := shared.ReservationSnapshot{
		ID:                  res.ID(),
		MemberID:            res.MemberID(),
		ClassID:             res.ClassID(),
		PaidPrice:           p.PaidPrice,
		MembershipFactor:    p.MembershipFactor,
		PeakFactor:          p.PeakFactor,
		SurgeFactor:         p.SurgeFactor,
		OccupancyRateBefore: p.OccupancyRateBefore,
		Status:              res.Status().String(),
		CreatedAt:           res.CreatedAt(),
	}
	if c := res.Cancellation(); c != nil {
		at := c.CancelledAt
		snap.CancelledAt = &at
		snap.RefundAmount = c.RefundAmount
		snap.RefundRatio = c.RefundRatio
	}
	return snap
}

func (r reservationRepo) Create(_ context.Context, _ query.DBTX, res *reservation.Reservation) error {
	if err := r.s.FailOn["reservations.create"]; err != nil {
		return err
	}
	r.s.Reservations[res.ID()] = toSnapshot(res)
	return nil
}

func (r reservationRepo) MarkCancelled(_ context.Context, _ query.DBTX, res *reservation.Reservation) error {
	existing, ok := r.s.Reservations[res.ID()]
	if !ok || existing.Status != reservation.StatusConfirmed.String() {
		return notFound("confirmed reservation")
	}
	r.s.Reservations[res.ID()] = toSnapshot(res)
	return nil
}

type idempotencyRepo struct{ s *Store }

func (r idempotencyRepo) TryInsert(_ context.Context, _ query.DBTX, key uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error) {
	if existing, ok := r.s.Idempotency[key]; ok && existing.ExpiresAt.After(now) {
		return false, nil
	}
	r.s.Idempotency[key] = shared.IdempotencyRecord{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) SetResult(_ context.Context, _ query.DBTX, key, reservationID uuid.UUID) error {
	rec, ok := r.s.Idempotency[key]
	if !ok {
		return notFound("idempotency key")
	}
	rec.ReservationID = &reservationID
	r.s.Idempotency[key] = rec
	return nil
}

type outboxRepo struct{ s *Store }

func (r outboxRepo) Append(_ context.Context, _ query.DBTX, topic string, payload []byte, at time.Time) error {
	if err := r.s.FailOn["outbox.append"]; err != nil {
		return err
	}
	r.s.Outbox = append(r.s.Outbox, OutboxEvent{Topic: topic, Payload: payload, At: at})
	return nil
}
