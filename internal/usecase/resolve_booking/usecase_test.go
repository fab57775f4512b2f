package resolve_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	resourceRepo "github.com/kly4ev/SDA-BookingService/internal/infra/storage/resource"
	"github.com/kly4ev/SDA-BookingService/internal/integrations/notifyservice"
	"github.com/kly4ev/SDA-BookingService/internal/service/transactor"
	"github.com/kly4ev/SDA-BookingService/pkg/ptr"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeResourceRepo struct {
	resource *domain.Resource
	err      error
}

func (f *fakeResourceRepo) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resource, nil
}

type fakeApptRepo struct {
	// batches returned by successive GetForDate calls; the last batch repeats
	batches [][]*domain.Appointment
	calls   int
}

func (f *fakeApptRepo) GetForDate(ctx context.Context, resourceID int64, date time.Time) ([]*domain.Appointment, error) {
	idx := f.calls
	if idx >= len(f.batches) {
		idx = len(f.batches) - 1
	}
	f.calls++
	if idx < 0 {
		return nil, nil
	}
	return f.batches[idx], nil
}

type fakeTransactor struct {
	// errs returned by successive Commit calls; nil means success
	errs  []error
	calls int
}

func (f *fakeTransactor) Commit(ctx context.Context, resource *domain.Resource, clientID int64, date time.Time, start types.TimeString) (*domain.Appointment, error) {
	var err error
	if f.calls < len(f.errs) {
		err = f.errs[f.calls]
	}
	f.calls++
	if err != nil {
		return nil, err
	}

	return &domain.Appointment{
		ID:              77,
		ClientID:        clientID,
		ResourceID:      resource.ID,
		SalonID:         resource.SalonID,
		ServiceID:       resource.ServiceID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: resource.DurationMinutes,
		Status:          domain.StatusConfirmed,
		ServiceName:     resource.ServiceName,
		PriceSnapshot:   resource.Price,
		CreatedAt:       time.Now(),
	}, nil
}

type fakeNotifier struct {
	events chan *notifyservice.BookingConfirmedEvent
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(chan *notifyservice.BookingConfirmedEvent, 1)}
}

func (f *fakeNotifier) NotifyBookingConfirmed(ctx context.Context, event *notifyservice.BookingConfirmedEvent) error {
	f.events <- event
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func testResource() *domain.Resource {
	return &domain.Resource{
		ID:              1,
		SalonID:         10,
		ServiceID:       100,
		ServiceName:     "Стрижка",
		DurationMinutes: 60,
		Price:           1500,
		Hours: domain.WeeklyHours{
			Monday: domain.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
		},
	}
}

// 2026-09-14 is a Monday
func testDate() time.Time {
	return time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
}

func confirmed(start types.TimeString, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func newTestUseCase(
	resources *fakeResourceRepo,
	appts *fakeApptRepo,
	tx *fakeTransactor,
	notifier Notifier,
) *UseCase {
	uc := NewUseCase(resources, appts, tx, notifier, noopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:   42,
		ResourceID: 1,
		Date:       testDate(),
		StartTime:  "10:00",
	}
}

func TestExecute_Booked(t *testing.T) {
	notifier := newFakeNotifier()
	tx := &fakeTransactor{}
	uc := newTestUseCase(
		&fakeResourceRepo{resource: testResource()},
		&fakeApptRepo{},
		tx,
		notifier,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeBooked, resp.Outcome)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(77), resp.Appointment.ID)
	assert.Equal(t, int64(42), resp.Appointment.ClientID)
	assert.Equal(t, "confirmed", resp.Appointment.Status)
	assert.Equal(t, 1, tx.calls)

	select {
	case event := <-notifier.events:
		assert.Equal(t, int64(77), event.AppointmentID)
		assert.Equal(t, "10:00", event.StartTime)
	case <-time.After(time.Second):
		t.Fatal("expected booking notification")
	}
}

func TestExecute_SlotTaken_ReturnsSuggestions(t *testing.T) {
	tx := &fakeTransactor{}
	uc := newTestUseCase(
		&fakeResourceRepo{resource: testResource()},
		&fakeApptRepo{batches: [][]*domain.Appointment{
			{confirmed("10:00", 60)},
		}},
		tx,
		newFakeNotifier(),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuggestions, resp.Outcome)
	assert.Equal(t, []string{"09:00", "11:00", "12:00"}, resp.Suggestions)
	assert.Nil(t, resp.Appointment)
	assert.Zero(t, tx.calls, "commit must not be attempted for a taken slot")
}

func TestExecute_FullyBookedDay_ReturnsEmptySuggestions(t *testing.T) {
	resource := testResource()
	resource.Hours.Monday = domain.DaySchedule{IsOpen: true, OpenTime: "10:00", CloseTime: "11:00"}

	uc := newTestUseCase(
		&fakeResourceRepo{resource: resource},
		&fakeApptRepo{batches: [][]*domain.Appointment{
			{confirmed("10:00", 60)},
		}},
		&fakeTransactor{},
		newFakeNotifier(),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuggestions, resp.Outcome)
	assert.Empty(t, resp.Suggestions, "empty list is an explicit 'no alternatives' answer")
}

func TestExecute_OutsideOperatingHours_Rejected(t *testing.T) {
	tx := &fakeTransactor{}
	uc := newTestUseCase(
		&fakeResourceRepo{resource: testResource()},
		&fakeApptRepo{},
		tx,
		newFakeNotifier(),
	)

	req := validRequest()
	req.StartTime = "16:30" // ends 17:30, past closing

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, resp.Outcome)
	assert.Equal(t, RejectReasonOutsideOperatingHours, resp.Reason)
	assert.Empty(t, resp.Suggestions, "no alternatives offered for out-of-hours requests")
	assert.Zero(t, tx.calls)
}

func TestExecute_ClosedDay_Rejected(t *testing.T) {
	resource := testResource()
	resource.Hours.Monday = domain.DaySchedule{IsOpen: false}

	uc := newTestUseCase(
		&fakeResourceRepo{resource: resource},
		&fakeApptRepo{},
		&fakeTransactor{},
		newFakeNotifier(),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, resp.Outcome)
	assert.Equal(t, RejectReasonOutsideOperatingHours, resp.Reason)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing client", mutate: func(r *Request) { r.ClientID = 0 }},
		{name: "missing resource", mutate: func(r *Request) { r.ResourceID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "past date", mutate: func(r *Request) { r.Date = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "10-00" }},
		{name: "preferences too long", mutate: func(r *Request) {
			long := make([]byte, domain.MaxPreferencesLength+1)
			r.Preferences = ptr.Ptr(string(long))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&fakeResourceRepo{resource: testResource()},
				&fakeApptRepo{},
				&fakeTransactor{},
				newFakeNotifier(),
			)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ResourceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeResourceRepo{err: resourceRepo.ErrResourceNotFound},
		&fakeApptRepo{},
		&fakeTransactor{},
		newFakeNotifier(),
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_LostRace_SlotGone_ReturnsSuggestions(t *testing.T) {
	// Pre-check sees a free slot, but a concurrent client commits 10:00 first.
	tx := &fakeTransactor{errs: []error{transactor.ErrSlotTaken}}
	uc := newTestUseCase(
		&fakeResourceRepo{resource: testResource()},
		&fakeApptRepo{batches: [][]*domain.Appointment{
			{}, // pre-check: day looks free
			{confirmed("10:00", 60)}, // refresh after the lost race
		}},
		tx,
		newFakeNotifier(),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuggestions, resp.Outcome)
	assert.Equal(t, []string{"09:00", "11:00", "12:00"}, resp.Suggestions)
	assert.Equal(t, 1, tx.calls, "no second commit when the slot is gone")
}

func TestExecute_LostRace_SlotStillFree_RetriesOnce(t *testing.T) {
	// The race loser re-checks: winner took a different slot, ours is still free.
	tx := &fakeTransactor{errs: []error{transactor.ErrSlotTaken, nil}}
	uc := newTestUseCase(
		&fakeResourceRepo{resource: testResource()},
		&fakeApptRepo{batches: [][]*domain.Appointment{
			{},                       // pre-check
			{confirmed("14:00", 60)}, // refresh: a different slot was taken
		}},
		tx,
		newFakeNotifier(),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeBooked, resp.Outcome)
	assert.Equal(t, 2, tx.calls)
}

func TestExecute_LostRaceTwice_StopsRetrying(t *testing.T) {
	// Both commit attempts lose; the loop must not spin further.
	tx := &fakeTransactor{errs: []error{transactor.ErrSlotTaken, transactor.ErrSlotTaken}}
	uc := newTestUseCase(
		&fakeResourceRepo{resource: testResource()},
		&fakeApptRepo{batches: [][]*domain.Appointment{
			{},                       // pre-check
			{confirmed("14:00", 60)}, // refresh: slot still looks free
		}},
		tx,
		newFakeNotifier(),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuggestions, resp.Outcome)
	assert.Equal(t, 2, tx.calls, "bounded to a single retry")
}

func TestExecute_CommitRejectsOutsideHours(t *testing.T) {
	// Commit itself may discover the schedule problem under the transaction.
	tx := &fakeTransactor{errs: []error{transactor.ErrOutsideOperatingHours}}
	uc := newTestUseCase(
		&fakeResourceRepo{resource: testResource()},
		&fakeApptRepo{},
		tx,
		newFakeNotifier(),
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, resp.Outcome)
	assert.Equal(t, RejectReasonOutsideOperatingHours, resp.Reason)
}
