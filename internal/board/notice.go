package board

import "time"

const DefaultNoticeDuration = 3 * time.Second

// Notice is a transient user-facing message. Each Show returns a sequence
// number; Expire only clears the message it was scheduled for, so a newer
// message restarts the countdown.
type Notice struct {
	Duration time.Duration

	text string
	seq  uint64
}

func NewNotice(duration time.Duration) *Notice {
	if duration <= 0 {
		duration = DefaultNoticeDuration
	}
	return &Notice{Duration: duration}
}

func (n *Notice) Show(text string) uint64 {
	n.seq++
	n.text = text
	return n.seq
}

// Expire clears the notice if seq is still the latest. It reports whether
// anything was cleared.
func (n *Notice) Expire(seq uint64) bool {
	if seq != n.seq || n.text == "" {
		return false
	}
	n.text = ""
	return true
}

// Clear drops the current message and invalidates pending expiries.
func (n *Notice) Clear() {
	n.seq++
	n.text = ""
}

func (n *Notice) Text() string { return n.text }

func (n *Notice) Visible() bool { return n.text != "" }
