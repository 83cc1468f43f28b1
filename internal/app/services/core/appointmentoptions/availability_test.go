package appointmentoptions

import (
	"testing"

	"doctorsportal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAvailability(t *testing.T) {
	options := []models.AppointmentOption{
		{ID: "1", Name: "Teeth Cleaning", Slots: []string{"09.00-10.00", "10.00-11.00"}, Price: 80},
		{ID: "2", Name: "Fluoride Treatment", Slots: []string{"09.00-10.00"}, Price: 120},
	}

	t.Run("booked slot is removed for the matching treatment only", func(t *testing.T) {
		bookingsForDate := []models.Booking{
			{Treatment: "Teeth Cleaning", Slot: "09.00-10.00"},
		}

		result := ComputeAvailability(options, bookingsForDate)
		require.Len(t, result, 2)
		assert.Equal(t, []string{"10.00-11.00"}, result[0].Slots)
		assert.Equal(t, []string{"09.00-10.00"}, result[1].Slots)
	})

	t.Run("fully booked option stays with an empty slot list", func(t *testing.T) {
		bookingsForDate := []models.Booking{
			{Treatment: "Fluoride Treatment", Slot: "09.00-10.00"},
		}

		result := ComputeAvailability(options, bookingsForDate)
		require.Len(t, result, 2)
		assert.Equal(t, "Fluoride Treatment", result[1].Name)
		assert.Empty(t, result[1].Slots)
	})

	t.Run("no bookings leaves every slot in stored order", func(t *testing.T) {
		result := ComputeAvailability(options, nil)
		require.Len(t, result, 2)
		assert.Equal(t, []string{"09.00-10.00", "10.00-11.00"}, result[0].Slots)
	})

	t.Run("slot order is preserved when a middle slot is booked", func(t *testing.T) {
		wideOption := []models.AppointmentOption{
			{Name: "Oral Surgery", Slots: []string{"08.00-09.00", "09.00-10.00", "10.00-11.00"}},
		}
		bookingsForDate := []models.Booking{
			{Treatment: "Oral Surgery", Slot: "09.00-10.00"},
		}

		result := ComputeAvailability(wideOption, bookingsForDate)
		require.Len(t, result, 1)
		assert.Equal(t, []string{"08.00-09.00", "10.00-11.00"}, result[0].Slots)
	})

	t.Run("bookings for other treatments do not bleed over", func(t *testing.T) {
		bookingsForDate := []models.Booking{
			{Treatment: "Oral Surgery", Slot: "09.00-10.00"},
		}

		result := ComputeAvailability(options, bookingsForDate)
		assert.Equal(t, []string{"09.00-10.00", "10.00-11.00"}, result[0].Slots)
		assert.Equal(t, []string{"09.00-10.00"}, result[1].Slots)
	})

	t.Run("empty options yields an empty result", func(t *testing.T) {
		result := ComputeAvailability(nil, nil)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
