package model

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusLive     Status = "live"
	StatusSold     Status = "sold"
	StatusArchived Status = "archived"
)

// validNext encodes the item lifecycle. An item only ever moves forward:
// pending -> approved -> live -> sold, with archival allowed from any
// non-terminal status. Shipped/delivered are sub-state timestamps within
// sold, not statuses.
var validNext = map[Status]map[Status]bool{
	StatusPending:  {StatusApproved: true, StatusArchived: true},
	StatusApproved: {StatusLive: true, StatusArchived: true},
	StatusLive:     {StatusSold: true, StatusArchived: true},
	StatusSold:     {},
	StatusArchived: {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func (s Status) Terminal() bool {
	return len(validNext[s]) == 0
}

func (s Status) Valid() bool {
	_, ok := validNext[s]
	return ok
}
