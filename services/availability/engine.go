// Package availability reconciles the treatment catalog against the
// bookings of a single date. It is pure computation: the caller performs the
// two store reads and passes the results in.
package availability

import "doctorsportal/models"

// Compute returns the catalog with each service's slots filtered down to
// the ones not yet booked on the date the bookings were fetched for.
//
// Bookings are partitioned by treatment name; slot order is preserved and a
// slot booked twice counts the same as booked once. Bookings whose treatment
// matches no service are ignored. The input slices are never mutated; slot
// lists in the result are fresh copies since the catalog may be shared by
// concurrent callers.
func Compute(services []models.Service, bookings []models.Booking) []models.Service {
	bookedByTreatment := make(map[string]map[string]struct{})
	for _, b := range bookings {
		set := bookedByTreatment[b.Treatment]
		if set == nil {
			set = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = set
		}
		set[b.Slot] = struct{}{}
	}

	result := make([]models.Service, len(services))
	for i, svc := range services {
		booked := bookedByTreatment[svc.Name]
		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				available = append(available, slot)
			}
		}
		svc.Slots = available
		result[i] = svc
	}
	return result
}
