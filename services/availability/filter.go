package availability

import "soloapp/models"

// FilterBooked removes candidate slots that collide with existing active
// appointments. Cancelled appointments release their time, so only
// appointments whose status is still active count as booked. Input order is
// preserved and inputs are never mutated.
//
// Collision is an exact match on the slot's start key, not interval
// overlap: a booking of a different duration at an off-grid time will not
// be detected. That mirrors the platform's behavior and is a known
// limitation, kept deliberately.
func FilterBooked(slots []models.Slot, appointments []models.Appointment) []models.Slot {
	if len(appointments) == 0 {
		out := make([]models.Slot, len(slots))
		copy(out, slots)
		return out
	}

	booked := make(map[string]struct{}, len(appointments))
	for _, apt := range appointments {
		if apt.Status.Active() {
			booked[apt.StartKey()] = struct{}{}
		}
	}

	out := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot.Time24]; taken {
			continue
		}
		out = append(out, slot)
	}
	return out
}
