package appointmentoptions

import (
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/responses"
)

// ComputeAvailability reduces each option's slot list to the slots not yet
// claimed by a booking for the same treatment. Slot order is preserved from
// the stored option and fully booked options are kept with an empty list.
// Pure function; callers pass the bookings already filtered to one date.
func ComputeAvailability(appointmentOptions []models.AppointmentOption, bookingsForDate []models.Booking) []responses.AppointmentOption {
	result := make([]responses.AppointmentOption, 0, len(appointmentOptions))
	for _, option := range appointmentOptions {
		bookedSlots := make(map[string]struct{})
		for _, booking := range bookingsForDate {
			if booking.Treatment == option.Name {
				bookedSlots[booking.Slot] = struct{}{}
			}
		}

		remainingSlots := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, booked := bookedSlots[slot]; !booked {
				remainingSlots = append(remainingSlots, slot)
			}
		}

		result = append(result, responses.AppointmentOption{
			ID:    option.ID,
			Name:  option.Name,
			Slots: remainingSlots,
			Price: option.Price,
		})
	}
	return result
}
