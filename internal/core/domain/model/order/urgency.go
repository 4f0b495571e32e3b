package order

import "time"

// Urgency is an advisory display category for the delivery date.
type Urgency string

const (
	UrgencyNone      Urgency = "none"
	UrgencyOverdue   Urgency = "overdue"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyToday     Urgency = "today"
	UrgencyScheduled Urgency = "scheduled"
)

const urgentWithinHours = 2

// ClassifyUrgency buckets dataEntrega relative to now. Hours and days are floored,
// so 1h59m is urgent and 23h59m is still today.
func ClassifyUrgency(dataEntrega *time.Time, now time.Time) Urgency {
	if dataEntrega == nil {
		return UrgencyNone
	}

	diff := dataEntrega.Sub(now)
	if diff < 0 {
		return UrgencyOverdue
	}

	hours := int(diff / time.Hour)
	if hours < urgentWithinHours {
		return UrgencyUrgent
	}
	if hours/24 >= 1 {
		return UrgencyScheduled
	}
	return UrgencyToday
}
