package model

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TicketStatus enumerates the lifecycle states of a ticket.  Only these
// three values are ever persisted; free-text input from clients is folded
// into one of them by ParseTicketStatus before reaching the database.
type TicketStatus string

const (
	StatusAvailable TicketStatus = "AVAILABLE" // issued, not yet claimed
	StatusAssigned  TicketStatus = "ASSIGNED"  // claimed by a member
	StatusPaid      TicketStatus = "PAID"      // paid for, payment date recorded
)

// Valid reports whether s is one of the known lifecycle states.
func (s TicketStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusPaid:
		return true
	}
	return false
}

// ParseTicketStatus folds a client-supplied status string into a
// TicketStatus.  The input is stripped of diacritics, trimmed and
// lower-cased; anything containing "pay" (payé, paye, payment...) becomes
// PAID and anything containing "assign" (assigné, assignment...) becomes
// ASSIGNED.  The literal state names, the legacy French "disponible" and an
// empty string all map to AVAILABLE.  Anything else is rejected so that an
// unconstrained string can never be persisted as a status.
func ParseTicketStatus(raw string) (TicketStatus, error) {
	s := strings.ToLower(strings.TrimSpace(stripDiacritics(raw)))
	switch {
	case strings.Contains(s, "pay"):
		return StatusPaid, nil
	case strings.Contains(s, "assign"):
		return StatusAssigned, nil
	case s == "" || s == "available" || s == "disponible":
		return StatusAvailable, nil
	}
	return "", fmt.Errorf("unknown ticket status %q", raw)
}

// stripDiacritics removes combining marks so that "Payé" compares equal to
// "Paye".  On a transform error the input is returned unchanged; the caller
// then simply fails to match and rejects the value.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
