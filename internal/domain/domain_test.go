package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationShowcase/pkg/ptr"
)

func TestBusinessConfig_NumberPrefix(t *testing.T) {
	assert.Equal(t, "SALO", (&BusinessConfig{Type: BusinessSalon}).NumberPrefix())
	assert.Equal(t, "CLIN", (&BusinessConfig{Type: BusinessClinic}).NumberPrefix())
	assert.Equal(t, "REST", (&BusinessConfig{Type: BusinessRestaurant}).NumberPrefix())
	assert.Equal(t, "HANA", (&BusinessConfig{Type: BusinessSalon, ReservationPrefix: "HANA"}).NumberPrefix())
}

func TestReservationStatus_IsValid(t *testing.T) {
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, ReservationStatus("cancelled").IsValid())
}

func TestReservationFilter_Matches(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	r := &Reservation{BusinessType: BusinessClinic, Date: day, Status: StatusConfirmed}

	assert.True(t, ReservationFilter{BusinessType: BusinessClinic}.Matches(r))
	assert.True(t, ReservationFilter{BusinessType: BusinessClinic, Date: &day}.Matches(r))
	assert.False(t, ReservationFilter{BusinessType: BusinessSalon}.Matches(r))
	assert.False(t, ReservationFilter{BusinessType: BusinessClinic, DateFrom: ptr.Ptr(day.AddDate(0, 0, 1))}.Matches(r))
	assert.False(t, ReservationFilter{BusinessType: BusinessClinic, Status: ptr.Ptr(StatusCancelled)}.Matches(r))
}

func TestDateOf(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	late := time.Date(2026, 3, 10, 23, 30, 0, 0, tokyo)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(late))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), FirstOfMonth(DateOf(late)))
}
