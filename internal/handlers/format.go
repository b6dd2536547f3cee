package handlers

import "time"

// FormatMessageTime renders a message timestamp the way the message pane
// shows it: time only for today, "Yesterday" plus time for yesterday,
// date plus time otherwise.
func FormatMessageTime(ts, now time.Time) string {
	y, m, d := ts.Date()
	ny, nm, nd := now.Date()
	if y == ny && m == nm && d == nd {
		return ts.Format("15:04")
	}

	yesterday := now.AddDate(0, 0, -1)
	y2, m2, d2 := yesterday.Date()
	if y == y2 && m == m2 && d == d2 {
		return "Yesterday " + ts.Format("15:04")
	}

	return ts.Format("Jan 2 15:04")
}

// DayLabel renders the calendar-date divider the message list groups
// messages under.
func DayLabel(ts, now time.Time) string {
	y, m, d := ts.Date()
	ny, nm, nd := now.Date()
	if y == ny && m == nm && d == nd {
		return "Today"
	}

	yesterday := now.AddDate(0, 0, -1)
	y2, m2, d2 := yesterday.Date()
	if y == y2 && m == m2 && d == d2 {
		return "Yesterday"
	}

	return ts.Format("January 2, 2006")
}
