package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vector-rocks/controller"
)

// holdWindow is how long a movement key counts as held after its last
// press event. Terminal autorepeat refreshes the deadline while the key
// stays down; the window must outlast the repeat interval.
const holdWindow = 180 * time.Millisecond

// Handler folds key events into a controller.KeyState. Not safe for
// concurrent use; the frame loop owns it.
type Handler struct {
	table *KeyTable

	heldUntil     [3]time.Time // turn left, turn right, thrust
	firePrimary   bool
	fireSecondary bool
}

// NewHandler creates a handler with the given bindings, nil for defaults
func NewHandler(table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table}
}

// HandleEvent processes one terminal event. Movement and fire actions are
// absorbed into the key state; system actions (pause, quit, restart,
// telemetry) are returned for the caller to act on.
func (h *Handler) HandleEvent(ev tcell.Event, now time.Time) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	action := h.table.Lookup(key)
	switch action {
	case ActionTurnLeft:
		h.heldUntil[0] = now.Add(holdWindow)
	case ActionTurnRight:
		h.heldUntil[1] = now.Add(holdWindow)
	case ActionThrust:
		h.heldUntil[2] = now.Add(holdWindow)
	case ActionFirePrimary:
		h.firePrimary = true
	case ActionFireSecondary:
		h.fireSecondary = true
	case ActionNone:
	default:
		return action
	}
	return ActionNone
}

// Keys snapshots the current key state and clears edge-triggered fire
// flags. Called once per frame before handing the state to the controller.
func (h *Handler) Keys(now time.Time) controller.KeyState {
	keys := controller.KeyState{
		Left:          now.Before(h.heldUntil[0]),
		Right:         now.Before(h.heldUntil[1]),
		Thrust:        now.Before(h.heldUntil[2]),
		FirePrimary:   h.firePrimary,
		FireSecondary: h.fireSecondary,
	}
	h.firePrimary = false
	h.fireSecondary = false
	return keys
}
