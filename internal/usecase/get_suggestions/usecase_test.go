package get_suggestions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	resourceRepo "github.com/kly4ev/SDA-BookingService/internal/infra/storage/resource"
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
	appointments []*domain.Appointment
}

func (f *fakeApptRepo) GetForDate(ctx context.Context, resourceID int64, date time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
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
		ServiceName:     "Маникюр",
		DurationMinutes: 60,
		Price:           2000,
		Hours: domain.WeeklyHours{
			Monday: domain.DaySchedule{IsOpen: true, OpenTime: "09:00", CloseTime: "17:00"},
		},
	}
}

// 2026-09-14 is a Monday
func testDate() time.Time {
	return time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(resources *fakeResourceRepo, appts *fakeApptRepo) *UseCase {
	uc := NewUseCase(resources, appts, noopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_ReturnsAvailableTimes(t *testing.T) {
	uc := newTestUseCase(
		&fakeResourceRepo{resource: testResource()},
		&fakeApptRepo{appointments: []*domain.Appointment{
			{StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:     1,
		Date:           testDate(),
		MaxSuggestions: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ResourceID)
	assert.Equal(t, []string{"09:00", "11:00", "12:00"}, resp.Times)
}

func TestExecute_ClosedDay(t *testing.T) {
	resource := testResource()
	resource.Hours.Monday = domain.DaySchedule{IsOpen: false}

	uc := newTestUseCase(&fakeResourceRepo{resource: resource}, &fakeApptRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ResourceID: 1, Date: testDate()})
	require.NoError(t, err)

	assert.Empty(t, resp.Times)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeResourceRepo{err: resourceRepo.ErrResourceNotFound}, &fakeApptRepo{})

	_, err := uc.Execute(context.Background(), &Request{ResourceID: 99, Date: testDate()})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing resource", req: &Request{Date: testDate()}},
		{name: "zero date", req: &Request{ResourceID: 1}},
		{name: "past date", req: &Request{ResourceID: 1, Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}},
		{name: "max above limit", req: &Request{ResourceID: 1, Date: testDate(), MaxSuggestions: 100}},
		{name: "negative max", req: &Request{ResourceID: 1, Date: testDate(), MaxSuggestions: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeResourceRepo{resource: testResource()}, &fakeApptRepo{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
