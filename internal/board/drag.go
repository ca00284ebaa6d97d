package board

import "github.com/nakachan-ing/kanban-cli/internal/model"

type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Drag tracks one drag gesture at a time: Idle -> Dragging -> Idle, leaving
// Dragging through Drop (over a column) or End (anything else). Nothing in
// Drag is persisted and none of its methods touch the task list.
type Drag struct {
	state     DragState
	taskID    string
	lifted    bool
	highlight string
	gesture   uint64
	columns   map[string]bool
}

func NewDrag(columns []model.Column) *Drag {
	d := &Drag{columns: map[string]bool{}}
	for _, column := range columns {
		d.columns[column.ID] = true
	}
	return d
}

func (d *Drag) State() DragState  { return d.state }
func (d *Drag) TaskID() string    { return d.taskID }
func (d *Drag) Lifted() bool      { return d.lifted }
func (d *Drag) Highlight() string { return d.highlight }
func (d *Drag) Dragging() bool    { return d.state == DragDragging }

// Start begins a gesture on a card. A gesture that starts on the card's
// delete control is suppressed and leaves the state untouched. The lifted
// treatment is not applied yet: the caller schedules Lift with the returned
// gesture number once the drag preview has been captured.
func (d *Drag) Start(taskID string, fromDelete bool) (uint64, bool) {
	if fromDelete || taskID == "" {
		return 0, false
	}
	d.reset()
	d.gesture++
	d.state = DragDragging
	d.taskID = taskID
	return d.gesture, true
}

// Lift applies the lifted treatment for gesture. A stale gesture (already
// dropped or replaced) is ignored.
func (d *Drag) Lift(gesture uint64) {
	if d.state == DragDragging && gesture == d.gesture {
		d.lifted = true
	}
}

// Over accepts a column as the drop target and makes it the only
// highlighted one. Unknown columns and idle drags are refused.
func (d *Drag) Over(column string) bool {
	if d.state != DragDragging || !d.columns[column] {
		return false
	}
	d.highlight = column
	return true
}

func (d *Drag) Leave(column string) {
	if d.highlight == column {
		d.highlight = ""
	}
}

// Drop ends the gesture over column. It reports the dragged task id when
// column is a known drop target; any other drop cancels. Either way the
// drag is back to Idle.
func (d *Drag) Drop(column string) (string, bool) {
	if d.state != DragDragging {
		return "", false
	}
	taskID := d.taskID
	valid := d.columns[column]
	d.reset()
	if !valid {
		return "", false
	}
	return taskID, true
}

// End is the catch-all conclusion of every gesture. It is safe to call at
// any time, including right after Drop.
func (d *Drag) End() {
	d.reset()
}

func (d *Drag) reset() {
	d.state = DragIdle
	d.taskID = ""
	d.lifted = false
	d.highlight = ""
}
