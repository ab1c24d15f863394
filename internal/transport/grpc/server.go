package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/ethanriley28/ybl-app/internal/availability"
	"github.com/ethanriley28/ybl-app/internal/domain"
	bookingsv1 "github.com/ethanriley28/ybl-app/internal/gen/proto/ybl/bookings/v1"
	"github.com/ethanriley28/ybl-app/internal/service/bookings"
	"github.com/ethanriley28/ybl-app/internal/store"
)

const errorDomain = "bookings.ybl"

type bookingsService interface {
	Slots(ctx context.Context, q bookings.SlotQuery) ([]availability.Slot, error)
	Reserve(ctx context.Context, in bookings.ReserveInput) (domain.Booking, error)
	Reschedule(ctx context.Context, id uuid.UUID, start, end time.Time) (domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	CheckConflict(ctx context.Context, start, end time.Time, excludeID uuid.UUID) ([]domain.Booking, error)
	Occupied(ctx context.Context, from, to *time.Time) ([]domain.Interval, error)
}

type BookingsServer struct {
	bookingsv1.UnimplementedBookingsServiceServer

	svc bookingsService
	log *slog.Logger
}

func NewBookingsServer(svc bookingsService, logger *slog.Logger) *BookingsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingsServer{
		svc: svc,
		log: logger.With(slog.String("component", "grpc.bookings")),
	}
}

func (s *BookingsServer) GetSlots(ctx context.Context, req *bookingsv1.GetSlotsRequest) (*bookingsv1.GetSlotsResponse, error) {
	log := s.log.With(slog.String("rpc", "GetSlots"))

	if req == nil || req.RangeStart == nil || req.RangeEnd == nil {
		return nil, status.Error(codes.InvalidArgument, "range_start and range_end are required")
	}

	slots, err := s.svc.Slots(ctx, bookings.SlotQuery{
		RangeStart:          req.RangeStart.AsTime(),
		RangeEnd:            req.RangeEnd.AsTime(),
		SlotDurationMinutes: int(req.SlotDurationMinutes),
	})
	if err != nil {
		return nil, s.toStatus(log, "get slots failed", err)
	}

	out := make([]*bookingsv1.Slot, 0, len(slots))
	for _, sl := range slots {
		out = append(out, &bookingsv1.Slot{
			SlotStart: timestamppb.New(sl.Interval.Start),
			SlotEnd:   timestamppb.New(sl.Interval.End),
			State:     string(sl.State),
		})
	}
	return &bookingsv1.GetSlotsResponse{Slots: out}, nil
}

func (s *BookingsServer) Reserve(ctx context.Context, req *bookingsv1.ReserveRequest) (*bookingsv1.ReserveResponse, error) {
	log := s.log.With(slog.String("rpc", "Reserve"))

	if req == nil || req.IntervalStart == nil || req.IntervalEnd == nil {
		return nil, status.Error(codes.InvalidArgument, "interval_start and interval_end are required")
	}

	b, err := s.svc.Reserve(ctx, bookings.ReserveInput{
		Start:          req.IntervalStart.AsTime(),
		End:            req.IntervalEnd.AsTime(),
		SubjectRef:     req.SubjectRef,
		Note:           &req.Note,
		IdempotencyKey: idempotencyKey(ctx),
	})
	if err != nil {
		return nil, s.toStatus(log, "reserve failed", err)
	}

	log.InfoContext(ctx, "booking reserved", slog.String("booking_id", b.ID.String()))
	return &bookingsv1.ReserveResponse{Booking: toProtoBooking(b)}, nil
}

func (s *BookingsServer) Reschedule(ctx context.Context, req *bookingsv1.RescheduleRequest) (*bookingsv1.RescheduleResponse, error) {
	log := s.log.With(slog.String("rpc", "Reschedule"))

	if req == nil || req.IntervalStart == nil || req.IntervalEnd == nil {
		return nil, status.Error(codes.InvalidArgument, "interval_start and interval_end are required")
	}
	id, err := uuid.Parse(strings.TrimSpace(req.Id))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id")
	}

	b, err := s.svc.Reschedule(ctx, id, req.IntervalStart.AsTime(), req.IntervalEnd.AsTime())
	if err != nil {
		return nil, s.toStatus(log, "reschedule failed", err)
	}
	return &bookingsv1.RescheduleResponse{Booking: toProtoBooking(b)}, nil
}

func (s *BookingsServer) Cancel(ctx context.Context, req *bookingsv1.CancelRequest) (*bookingsv1.CancelResponse, error) {
	log := s.log.With(slog.String("rpc", "Cancel"))

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id")
	}
	id, err := uuid.Parse(strings.TrimSpace(req.Id))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid id")
	}

	if err := s.svc.Cancel(ctx, id); err != nil {
		return nil, s.toStatus(log, "cancel failed", err)
	}
	return &bookingsv1.CancelResponse{}, nil
}

func (s *BookingsServer) ListBookings(ctx context.Context, req *bookingsv1.ListBookingsRequest) (*bookingsv1.ListBookingsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListBookings"))

	if req == nil || req.From == nil || req.To == nil {
		return nil, status.Error(codes.InvalidArgument, "from and to are required")
	}

	rows, err := s.svc.List(ctx, req.From.AsTime(), req.To.AsTime())
	if err != nil {
		return nil, s.toStatus(log, "list bookings failed", err)
	}

	out := make([]*bookingsv1.Booking, 0, len(rows))
	for _, b := range rows {
		out = append(out, toProtoBooking(b))
	}
	return &bookingsv1.ListBookingsResponse{Bookings: out}, nil
}

func (s *BookingsServer) CheckConflict(ctx context.Context, req *bookingsv1.CheckConflictRequest) (*bookingsv1.CheckConflictResponse, error) {
	log := s.log.With(slog.String("rpc", "CheckConflict"))

	if req == nil || req.IntervalStart == nil || req.IntervalEnd == nil {
		return nil, status.Error(codes.InvalidArgument, "interval_start and interval_end are required")
	}
	exclude := uuid.Nil
	if raw := strings.TrimSpace(req.ExcludeId); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid exclude_id")
		}
		exclude = id
	}

	rows, err := s.svc.CheckConflict(ctx, req.IntervalStart.AsTime(), req.IntervalEnd.AsTime(), exclude)
	if err != nil {
		return nil, s.toStatus(log, "check conflict failed", err)
	}
	return &bookingsv1.CheckConflictResponse{
		Conflict:  len(rows) > 0,
		Conflicts: toProtoIntervals(domain.Intervals(rows)),
	}, nil
}

func (s *BookingsServer) GetOccupied(ctx context.Context, req *bookingsv1.GetOccupiedRequest) (*bookingsv1.GetOccupiedResponse, error) {
	log := s.log.With(slog.String("rpc", "GetOccupied"))

	var from, to *time.Time
	if req != nil && req.From != nil {
		t := req.From.AsTime()
		from = &t
	}
	if req != nil && req.To != nil {
		t := req.To.AsTime()
		to = &t
	}

	ivs, err := s.svc.Occupied(ctx, from, to)
	if err != nil {
		return nil, s.toStatus(log, "get occupied failed", err)
	}
	return &bookingsv1.GetOccupiedResponse{Intervals: toProtoIntervals(ivs)}, nil
}

func (s *BookingsServer) toStatus(log *slog.Logger, msg string, err error) error {
	var vErr *bookings.ValidationError
	var cErr *bookings.ConflictError

	switch {
	case errors.As(err, &cErr):
		return conflictStatus(cErr.Conflicts)
	case errors.Is(err, store.ErrConflict):
		return conflictStatus(domain.Intervals(store.Conflicts(err)))
	case errors.Is(err, store.ErrIdempotencyConflict):
		return status.Error(codes.FailedPrecondition, "Idempotency key was already used with a different request.")
	case errors.As(err, &vErr):
		return status.Error(codes.InvalidArgument, vErr.Error())
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, "booking not found")
	case errors.Is(err, store.ErrUnavailable):
		log.Error(msg, slog.Any("err", err))
		return status.Error(codes.Unavailable, "booking store unavailable, try again")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")
	default:
		log.Error(msg, slog.Any("err", err))
		return status.Error(codes.Internal, "internal error")
	}
}

// conflictStatus is FailedPrecondition with an ErrorInfo detail listing each overlapping
// interval as conflict.N = "start/end".
func conflictStatus(conflicts []domain.Interval) error {
	st := status.New(codes.FailedPrecondition, "That time overlaps an existing booking. Pick a different slot.")
	md := map[string]string{"count": strconv.Itoa(len(conflicts))}
	for i, c := range conflicts {
		md["conflict."+strconv.Itoa(i)] = c.Start.UTC().Format(time.RFC3339Nano) + "/" + c.End.UTC().Format(time.RFC3339Nano)
	}
	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   "BOOKING_CONFLICT",
		Domain:   errorDomain,
		Metadata: md,
	})
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func idempotencyKey(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	for _, k := range []string{"idempotency-key", "x-idempotency-key"} {
		if vals := md.Get(k); len(vals) > 0 {
			return strings.TrimSpace(vals[0])
		}
	}
	return ""
}

func toProtoBooking(b domain.Booking) *bookingsv1.Booking {
	return &bookingsv1.Booking{
		Id:            b.ID.String(),
		IntervalStart: timestamppb.New(b.StartTime),
		IntervalEnd:   timestamppb.New(b.EndTime),
		SubjectRef:    b.SubjectRef,
		Note:          noteValue(b.Note),
		CreatedAt:     timestamppb.New(b.CreatedAt),
	}
}

func noteValue(n *string) string {
	if n == nil {
		return ""
	}
	return *n
}

func toProtoIntervals(ivs []domain.Interval) []*bookingsv1.Interval {
	out := make([]*bookingsv1.Interval, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, &bookingsv1.Interval{Start: timestamppb.New(iv.Start), End: timestamppb.New(iv.End)})
	}
	return out
}
