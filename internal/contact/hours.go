package contact

import "time"

// HoursStatus tells the contact page whether the shop answers right now.
type HoursStatus struct {
	IsOpen  bool   `json:"is_open"`
	Message string `json:"message"`
}

// BusinessHours evaluates the shop's working schedule: Sunday through
// Thursday 09:00 to 18:00, Friday 16:00 to 21:00, Saturday closed.
// Hours are read in the supplied instant's location.
func BusinessHours(now time.Time) HoursStatus {
	day := now.Weekday()
	hour := now.Hour()

	switch day {
	case time.Saturday:
		return HoursStatus{Message: "نحن مغلقون اليوم"}
	case time.Friday:
		return openBetween(hour, 16, 21)
	default:
		return openBetween(hour, 9, 18)
	}
}

func openBetween(hour, from, until int) HoursStatus {
	if hour >= from && hour < until {
		return HoursStatus{IsOpen: true, Message: "نحن مفتوحون الآن"}
	}
	return HoursStatus{Message: "نحن مغلقون الآن"}
}
