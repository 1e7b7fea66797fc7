package availability

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"soloapp/models"
	"soloapp/utils"
)

// AppointmentSource fetches the appointments booked with a professional on
// one date. The platform API client satisfies this; tests substitute fakes.
type AppointmentSource interface {
	ListForDate(ctx context.Context, professionalID int64, date string) ([]models.Appointment, error)
}

// ErrStaleResult marks a computation whose fetch completed after a newer
// request had already been issued. Callers discard the result rather than
// rendering slots for a date the customer has moved away from.
var ErrStaleResult = errors.New("availability: superseded by a newer request")

// Result is the outcome of one availability computation. Degraded is set
// when the appointment fetch failed and the slots were computed as if no
// appointments existed; FetchErr retains the underlying failure so callers
// can surface a warning without losing the slot list.
type Result struct {
	ProfessionalID int64
	Date           string
	Slots          []models.Slot
	Degraded       bool
	FetchErr       error
}

// Service resolves a professional and a selected date to the final list of
// bookable slots. It performs exactly one appointment read per invocation
// and never caches across calls; every date change triggers a fresh fetch.
type Service struct {
	Appointments AppointmentSource
	SlotDuration time.Duration

	// seq implements last-request-wins: each call claims the next sequence
	// number and a completion is kept only while it is still the newest.
	// The underlying fetch is not assumed to be cancellable.
	seq atomic.Uint64
}

// NewService returns a Service with the platform's default slot duration.
func NewService(src AppointmentSource) *Service {
	return &Service{Appointments: src, SlotDuration: DefaultSlotDuration}
}

func (s *Service) duration() time.Duration {
	if s.SlotDuration > 0 {
		return s.SlotDuration
	}
	return DefaultSlotDuration
}

// AvailableSlots computes the bookable slots for (professionalID, date).
//
// A closed or unconfigured day returns an empty result without touching the
// appointment source. A fetch failure degrades to "no existing
// appointments" and tags the result rather than aborting. When a newer call
// has been issued before this one finishes, the stale result is dropped and
// ErrStaleResult returned.
func (s *Service) AvailableSlots(ctx context.Context, professionalID int64, date time.Time, hours []models.WorkingHoursEntry) (Result, error) {
	if date.IsZero() {
		return Result{}, ErrZeroDate
	}
	logger := utils.GetLogger()

	token := s.seq.Add(1)
	dateStr := date.Format(utils.DateLayout)
	res := Result{ProfessionalID: professionalID, Date: dateStr}

	entry := WorkingHoursFor(hours, date)
	if entry == nil {
		// Closed day: nothing to offer, skip the fetch entirely.
		return res, nil
	}

	appointments, err := s.Appointments.ListForDate(ctx, professionalID, dateStr)
	if err != nil {
		logger.Warn("appointment fetch failed, computing slots without booked times",
			zap.Int64("professionalID", professionalID),
			zap.String("date", dateStr),
			zap.Error(err))
		res.Degraded = true
		res.FetchErr = err
		appointments = nil
	}

	if s.seq.Load() != token {
		return Result{}, ErrStaleResult
	}

	candidates, err := GenerateSlots(date, entry, s.duration())
	if err != nil {
		return Result{}, err
	}
	res.Slots = FilterBooked(candidates, appointments)
	return res, nil
}
