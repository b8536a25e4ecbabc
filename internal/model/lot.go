package model

import "time"

// Lot is a named range of ticket numbers attached to one activity.  The
// range is fixed at creation: tickets are issued for every number in
// [RangeStart, RangeEnd] and there is no resize operation.  A lot can only
// be deleted while no ticket references it.
type Lot struct {
	ID          string    `json:"lot_id"`
	ActivityID  uint64    `json:"activity_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	RangeStart  int       `json:"range_start"`
	RangeEnd    int       `json:"range_end"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Size returns how many tickets the lot's range covers.
func (l *Lot) Size() int { return l.RangeEnd - l.RangeStart + 1 }

// InRange reports whether a ticket number falls inside the lot's range.
func (l *Lot) InRange(number int) bool {
	return number >= l.RangeStart && number <= l.RangeEnd
}
