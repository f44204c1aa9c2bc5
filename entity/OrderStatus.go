package entity

// OrderStatus is the storage vocabulary. Orders move
// pending → accepted → preparing → ready_for_pickup → delivered, with
// cancelled reachable from any non-terminal state.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusAccepted       OrderStatus = "accepted"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// Stage is the four-step vocabulary shown to customers and sellers.
type Stage string

const (
	StageAccepted  Stage = "accepted"
	StagePreparing Stage = "preparing"
	StageReady     Stage = "ready"
	StagePickedUp  Stage = "picked_up"
)

// StageFlow is the strict seller-driven chain; no skipping, no going back.
var StageFlow = []Stage{StageAccepted, StagePreparing, StageReady, StagePickedUp}

// StageOf projects a storage status onto the display timeline. It is total:
// an unknown status renders as the first stage instead of breaking a
// dashboard. Note that delivered and cancelled share the terminal bucket, so
// a cancelled order currently displays like a completed one — a product
// decision to revisit, kept as-is here.
func StageOf(s OrderStatus) Stage {
	switch s {
	case StatusPending, StatusAccepted:
		return StageAccepted
	case StatusPreparing:
		return StagePreparing
	case StatusReadyForPickup:
		return StageReady
	case StatusDelivered, StatusCancelled:
		return StagePickedUp
	default:
		return StageAccepted
	}
}

// StorageOf is the single reverse mapping needed operationally: the status
// written when staff advance an order to the given stage.
func StorageOf(st Stage) OrderStatus {
	switch st {
	case StagePreparing:
		return StatusPreparing
	case StageReady:
		return StatusReadyForPickup
	case StagePickedUp:
		return StatusDelivered
	default:
		return StatusAccepted
	}
}

// StorageStatusesOf lists every storage status that projects onto the given
// stage. Used as the guard set for conditional status writes.
func StorageStatusesOf(st Stage) []OrderStatus {
	switch st {
	case StagePreparing:
		return []OrderStatus{StatusPreparing}
	case StageReady:
		return []OrderStatus{StatusReadyForPickup}
	case StagePickedUp:
		return []OrderStatus{StatusDelivered, StatusCancelled}
	default:
		return []OrderStatus{StatusPending, StatusAccepted}
	}
}

// NextStage returns the stage after st in StageFlow. ok is false when st is
// already terminal (or not a known stage).
func NextStage(st Stage) (next Stage, ok bool) {
	for i, s := range StageFlow {
		if s == st {
			if i == len(StageFlow)-1 {
				return st, false
			}
			return StageFlow[i+1], true
		}
	}
	return st, false
}

func ParseStage(s string) (Stage, bool) {
	for _, st := range StageFlow {
		if Stage(s) == st {
			return st, true
		}
	}
	return "", false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
