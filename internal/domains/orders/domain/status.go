package domain

import (
	"strconv"
	"strings"
)

// Status enumerates order progression.
type Status int

const (
	StatusPending Status = iota
	StatusCompleted
	StatusShipped
	StatusCanceled
)

// StatusUndefined marks a wire value that did not name a known status. It is never valid.
const StatusUndefined Status = -1

var statusNames = map[Status]string{
	StatusPending:   "Pending",
	StatusCompleted: "Completed",
	StatusShipped:   "Shipped",
	StatusCanceled:  "Canceled",
}

// IsValid reports whether the status is one of the enumerated values.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// ParseStatus resolves a status name case-insensitively. An empty value defaults to pending;
// unknown names resolve to StatusUndefined.
func ParseStatus(raw string) Status {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StatusPending
	}
	for status, name := range statusNames {
		if strings.EqualFold(name, raw) {
			return status
		}
	}
	return StatusUndefined
}

// Statuses lists the enumerated values in declaration order.
func Statuses() []Status {
	return []Status{StatusPending, StatusCompleted, StatusShipped, StatusCanceled}
}
