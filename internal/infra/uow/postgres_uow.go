package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fitness-booking/internal/infra"
	"fitness-booking/internal/infra/query"
	"fitness-booking/internal/infra/readstore"
	"fitness-booking/internal/infra/repository"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/pkg/pgconv"
	"fitness-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough because admission locks the class row explicitly
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		if attempt > maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt,
				"error", err.Error())
			return backoff.Permanent(errs.Mark(err, errMaxRetriesExceeded))
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.RandomizationFactor = 0.2
	policy.Multiplier = 2

	notify := func(err error, wait time.Duration) {
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	return backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx), notify)
}

// attempt commits on success and always rolls back otherwise, so nothing is deferred across retries
func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	memberRepo      shared.MemberRepository
	classRepo       shared.ClassRepository
	reservationRepo shared.ReservationRepository
	idempotencyRepo shared.IdempotencyRepository
	outboxRepo      shared.OutboxRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Members() shared.MemberRepository {
	if t.memberRepo == nil {
		t.memberRepo = repository.NewMemberRepository(t.uow.q, t.dbtx)
	}
	return t.memberRepo
}

func (t *pgTx) Classes() shared.ClassRepository {
	if t.classRepo == nil {
		t.classRepo = repository.NewClassRepository(t.uow.q, t.dbtx)
	}
	return t.classRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx query.DBTX

	// Lazy-initialized readstores
	memberStore      *readstore.MemberReadStore
	classStore       *readstore.ClassReadStore
	reservationStore *readstore.ReservationReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) MemberByID(ctx context.Context, id uuid.UUID) (*shared.MemberSnapshot, error) {
	if r.memberStore == nil {
		r.memberStore = readstore.NewMemberReadStore(r.uow.q, r.dbtx)
	}

	view, err := r.memberStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var snapshot shared.MemberSnapshot
	if err := copier.Copy(&snapshot, view); err != nil {
		return nil, errs.Wrap(err, "copy member snapshot")
	}
	return &snapshot, nil
}

func (r *commandReads) ClassByID(ctx context.Context, id uuid.UUID) (*shared.ClassSnapshot, error) {
	if r.classStore == nil {
		r.classStore = readstore.NewClassReadStore(r.uow.q, r.dbtx)
	}

	view, err := r.classStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var snapshot shared.ClassSnapshot
	if err := copier.Copy(&snapshot, view); err != nil {
		return nil, errs.Wrap(err, "copy class snapshot")
	}
	return &snapshot, nil
}

func (r *commandReads) ClassByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.ClassSnapshot, error) {
	row, err := r.uow.q.GetClassByIDForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock class", err)
	}

	return &shared.ClassSnapshot{
		ID:         row.ID,
		Name:       row.Name,
		Instructor: row.Instructor,
		Capacity:   int(row.Capacity),
		StartsAt:   pgconv.TimeFromPgtype(row.StartsAt),
		BasePrice:  row.BasePrice,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}

	view, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var snapshot shared.ReservationSnapshot
	if err := copier.Copy(&snapshot, view); err != nil {
		return nil, errs.Wrap(err, "copy reservation snapshot")
	}
	return &snapshot, nil
}

func (r *commandReads) ReservationByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row, err := r.uow.q.GetReservationByIDForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	var snapshot shared.ReservationSnapshot
	if err := copier.Copy(&snapshot, readstore.RowToReservationView(row)); err != nil {
		return nil, errs.Wrap(err, "copy reservation snapshot")
	}
	return &snapshot, nil
}

func (r *commandReads) CountActiveReservations(ctx context.Context, classID uuid.UUID) (int, error) {
	n, err := r.uow.q.CountActiveReservationsByClass(ctx, r.dbtx, classID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return int(n), nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}

	return r.idempotencyStore.Get(ctx, r.dbtx, key)
}
