package schema

import (
	"fmt"
	"time"
)

// HelpType selects the kind of assistance a request asks for.
type HelpType int

const (
	HelpPickup HelpType = iota
	HelpTour
	HelpLodging
)

var helpTypeNames = map[HelpType]string{
	HelpPickup:  "pickup",
	HelpTour:    "tour",
	HelpLodging: "lodging",
}

// Valid reports whether t is one of the known help types
func (t HelpType) Valid() bool {
	_, ok := helpTypeNames[t]
	return ok
}

func (t HelpType) String() string {
	if name, ok := helpTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("HelpType(%d)", int(t))
}

// HelpTypes lists every help type in code order.
func HelpTypes() []HelpType {
	return []HelpType{HelpPickup, HelpTour, HelpLodging}
}

// HelpState is the lifecycle state of a help request.
type HelpState string

const (
	HelpOpen      HelpState = "OPEN"
	HelpMatched   HelpState = "MATCHED"
	HelpCompleted HelpState = "COMPLETED"
	// HelpCancelled is kept for data compatibility. No command moves a
	// request into it.
	HelpCancelled HelpState = "CANCELLED"
)

// Terminal reports whether no further transition leaves s.
func (s HelpState) Terminal() bool {
	switch s {
	case HelpCompleted, HelpCancelled:
		return true
	case HelpOpen, HelpMatched:
		return false
	default:
		panic(fmt.Sprintf("unknown help state %q", string(s)))
	}
}

// HelpRequest is a posted request for help. Helper is empty while the
// request is open and fixed once it is matched.
type HelpRequest struct {
	ID          int64     `json:"id" gorm:"primary_key;auto_increment:false" bson:"id"`
	Requester   string    `json:"requester" gorm:"index" bson:"requester"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Location    string    `json:"location" bson:"location"`
	HelpType    HelpType  `json:"help_type" bson:"help_type"`
	State       HelpState `json:"state" gorm:"index" bson:"state"`
	Helper      string    `json:"helper,omitempty" gorm:"index" bson:"helper,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// MatchedHelper returns the helper of record. ok is false while the request
// is still open.
func (r *HelpRequest) MatchedHelper() (helper string, ok bool) {
	switch r.State {
	case HelpOpen:
		return "", false
	case HelpMatched, HelpCompleted:
		return r.Helper, true
	case HelpCancelled:
		return r.Helper, r.Helper != ""
	default:
		panic(fmt.Sprintf("unknown help state %q", string(r.State)))
	}
}

// Involves reports whether identity is the requester or the helper.
func (r *HelpRequest) Involves(identity string) bool {
	if r.Requester == identity {
		return true
	}
	helper, ok := r.MatchedHelper()
	return ok && helper == identity
}
