package booking

import "github.com/medreserve/medreserve-go/internal/reserve"

// Selectable reports whether a patient may pick this slot. Only slots the
// backend tagged FREE are selectable; BOOKED, BLOCKED, and UNAVAILABLE slots
// are shown but never offered. Slots without a status tag fall back to the
// plain availability flag.
func Selectable(slot reserve.ScheduleSlot) bool {
	if slot.Status != "" {
		return slot.Status == reserve.SlotFree
	}
	return slot.Available
}

// Visible reports whether a slot appears on the booking grid at all. Every
// tagged status renders; the distinction is styling, not presence.
func Visible(slot reserve.ScheduleSlot) bool {
	switch slot.Status {
	case reserve.SlotFree, reserve.SlotBooked, reserve.SlotBlocked, reserve.SlotUnavailable, "":
		return true
	}
	return false
}

// SelectableSlots filters slots down to the ones a patient may book.
func SelectableSlots(slots []reserve.ScheduleSlot) []reserve.ScheduleSlot {
	out := make([]reserve.ScheduleSlot, 0, len(slots))
	for _, slot := range slots {
		if Selectable(slot) {
			out = append(out, slot)
		}
	}
	return out
}

// SlotCounts tallies slots per status for the schedule dashboard. Untagged
// slots are counted as FREE or UNAVAILABLE from the availability flag.
func SlotCounts(slots []reserve.ScheduleSlot) map[reserve.SlotStatus]int {
	counts := make(map[reserve.SlotStatus]int, 4)
	for _, slot := range slots {
		status := slot.Status
		if status == "" {
			status = reserve.SlotUnavailable
			if slot.Available {
				status = reserve.SlotFree
			}
		}
		counts[status]++
	}
	return counts
}
