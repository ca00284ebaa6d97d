// Package board owns the task list of a kanban board.
//
// A Board is the single writer of its tasks and of the storage slot they
// persist into. Every mutating operation persists the full list before it
// returns. Render derives the visible layout from the list; it is total and
// idempotent and never modifies the list.
//
// Drag and Notice hold the transient UI state (a drag gesture in flight and
// the auto-clearing error notice). They are plain values with no timers of
// their own, so the adapter on top decides how delays are scheduled.
package board
