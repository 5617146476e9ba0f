package domain

import "time"

// HistoryCursor marks a position in the conversion log. Records are ordered by
// Timestamp descending, then ID descending.
type HistoryCursor struct {
	Timestamp time.Time
	ID        int64
}

// Cursor returns the position of rec in the log.
func (rec ConversionRecord) Cursor() HistoryCursor {
	return HistoryCursor{Timestamp: rec.Timestamp, ID: rec.ID}
}

// After reports whether rec sorts after (is older than) the cursor.
func (c HistoryCursor) After(rec ConversionRecord) bool {
	if rec.Timestamp.Equal(c.Timestamp) {
		return rec.ID < c.ID
	}
	return rec.Timestamp.Before(c.Timestamp)
}

// NewerFirst is a sort comparison for the log order.
func NewerFirst(a, b ConversionRecord) int {
	switch {
	case a.Timestamp.After(b.Timestamp):
		return -1
	case a.Timestamp.Before(b.Timestamp):
		return 1
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}
