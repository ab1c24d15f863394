package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/ethanriley28/ybl-app/internal/domain"
	"github.com/ethanriley28/ybl-app/internal/store"
)

// calendarLockKey names the advisory lock serializing every booking write. There is one
// coach and therefore one calendar.
const calendarLockKey = "ybl:bookings"

type BookingRepo struct {
	db *bun.DB
}

var _ store.BookingStore = (*BookingRepo)(nil)

func NewBookingRepo(db *bun.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

type calendarTx struct {
	tx bun.Tx
}

func (r *BookingRepo) ListOverlapping(ctx context.Context, iv domain.Interval) ([]domain.Booking, error) {
	var rows []domain.Booking
	err := r.db.NewSelect().
		Model(&rows).
		Where("start_time < ?", iv.End).
		Where("end_time > ?", iv.Start).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, classify("list overlapping", err)
	}
	return normalize(rows), nil
}

func (r *BookingRepo) InsertIfNoOverlap(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	var out domain.Booking
	err := r.InTransaction(ctx, func(ctx context.Context, tx store.CalendarTx) error {
		created, err := store.InsertIfNoOverlap(ctx, tx, b)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return domain.Booking{}, classify("insert", err)
	}
	return out, nil
}

func (r *BookingRepo) ReplaceIfNoOverlap(ctx context.Context, id uuid.UUID, iv domain.Interval) (domain.Booking, error) {
	var out domain.Booking
	err := r.InTransaction(ctx, func(ctx context.Context, tx store.CalendarTx) error {
		updated, err := store.ReplaceIfNoOverlap(ctx, tx, id, iv)
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return domain.Booking{}, classify("replace", err)
	}
	return out, nil
}

func (r *BookingRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*domain.Booking)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return classify("delete", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return classify("delete", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) Ping(ctx context.Context) error {
	return classify("ping", r.db.PingContext(ctx))
}

// InTransaction runs fn while holding the calendar advisory lock. The lock is released when
// the transaction ends.
func (r *BookingRepo) InTransaction(ctx context.Context, fn func(ctx context.Context, tx store.CalendarTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockCalendar(ctx, tx); err != nil {
			return err
		}
		return fn(ctx, calendarTx{tx: tx})
	})
}

func lockCalendar(ctx context.Context, tx bun.Tx) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", calendarLockKey).Exec(ctx)
	return err
}

func (c calendarTx) GetBooking(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	var b domain.Booking
	err := c.tx.NewSelect().
		Model(&b).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Booking{}, classify("get", err)
	}
	return normalizeOne(b), nil
}

func (c calendarTx) ListOverlapping(ctx context.Context, iv domain.Interval, excludeID uuid.UUID) ([]domain.Booking, error) {
	var rows []domain.Booking
	q := c.tx.NewSelect().
		Model(&rows).
		Where("start_time < ?", iv.End).
		Where("end_time > ?", iv.Start).
		OrderExpr("start_time ASC")
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, classify("list overlapping", err)
	}
	return normalize(rows), nil
}

func (c calendarTx) InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	m := domain.Booking{
		ID:         b.ID,
		SubjectRef: b.SubjectRef,
		Note:       b.Note,
		StartTime:  b.StartTime.UTC(),
		EndTime:    b.EndTime.UTC(),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if _, err := c.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Booking{}, classify("insert", err)
	}
	return normalizeOne(m), nil
}

func (c calendarTx) UpdateBookingInterval(ctx context.Context, id uuid.UUID, iv domain.Interval) (domain.Booking, error) {
	m := domain.Booking{ID: id, StartTime: iv.Start, EndTime: iv.End}
	res, err := c.tx.NewUpdate().
		Model(&m).
		Column("start_time", "end_time", "updated_at").
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return domain.Booking{}, classify("update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Booking{}, classify("update", err)
	}
	if affected == 0 {
		return domain.Booking{}, store.ErrNotFound
	}
	return normalizeOne(m), nil
}

func normalize(rows []domain.Booking) []domain.Booking {
	for i := range rows {
		rows[i] = normalizeOne(rows[i])
	}
	return rows
}

// normalizeOne returns timestamps in UTC whatever the session time zone.
func normalizeOne(b domain.Booking) domain.Booking {
	b.StartTime = b.StartTime.UTC()
	b.EndTime = b.EndTime.UTC()
	b.CreatedAt = utc(b.CreatedAt)
	b.UpdatedAt = utc(b.UpdatedAt)
	return b
}

func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
