package board

import (
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nakachan-ing/kanban-cli/internal/model"
	"github.com/nakachan-ing/kanban-cli/internal/store"
)

const (
	DefaultKey    = "tasks"
	DefaultStatus = "todo"
	DoneStatus    = "done"
)

// Celebrator fires the completion animation. It is best effort: errors are
// logged by the board and never fail the move that triggered them.
type Celebrator interface {
	Celebrate(config model.CelebrationConfig) error
}

type Options struct {
	Columns       []model.Column
	DefaultStatus string
	DoneStatus    string

	KV  store.KV
	Key string

	Celebrator Celebrator
	// A nil Celebration means model.DefaultCelebration().
	Celebration *model.CelebrationConfig

	Logger log.FieldLogger
	NewID  func() string
}

// OptionsFromConfig maps config.yaml onto board options.
func OptionsFromConfig(config model.Config, kv store.KV, celebrator Celebrator) Options {
	return Options{
		Columns:       config.Board.Columns,
		DefaultStatus: config.Board.DefaultStatus,
		DoneStatus:    config.Board.DoneStatus,
		KV:            kv,
		Key:           config.Storage.Key,
		Celebrator:    celebrator,
		Celebration:   &config.Celebration,
	}
}

type Board struct {
	tasks   []model.Task
	columns []model.Column
	known   map[string]bool

	defaultStatus string
	doneStatus    string

	kv  store.KV
	key string

	celebrator  Celebrator
	celebration model.CelebrationConfig

	log   log.FieldLogger
	newID func() string
}

// New builds a board and restores its tasks from the storage slot. A slot
// that cannot be read or parsed starts the board empty.
func New(opts Options) *Board {
	b := &Board{
		columns:       slices.Clone(opts.Columns),
		known:         map[string]bool{},
		defaultStatus: opts.DefaultStatus,
		doneStatus:    opts.DoneStatus,
		kv:            opts.KV,
		key:           opts.Key,
		celebrator:    opts.Celebrator,
		celebration:   model.DefaultCelebration(),
		log:           opts.Logger,
		newID:         opts.NewID,
	}
	if len(b.columns) == 0 {
		b.columns = model.DefaultColumns()
	}
	for _, column := range b.columns {
		b.known[column.ID] = true
	}
	if b.defaultStatus == "" {
		b.defaultStatus = DefaultStatus
	}
	if b.doneStatus == "" {
		b.doneStatus = DoneStatus
	}
	if opts.Celebration != nil {
		b.celebration = *opts.Celebration
	}
	if b.kv == nil {
		b.kv = store.NewMemoryKV()
	}
	if b.key == "" {
		b.key = DefaultKey
	}
	if b.log == nil {
		b.log = log.StandardLogger()
	}
	if b.newID == nil {
		b.newID = NewID
	}

	tasks, err := store.LoadTasks(b.kv, b.key)
	if err != nil {
		b.log.WithError(err).Warn("stored tasks unreadable, starting with an empty board")
	}
	b.tasks = tasks
	b.log.WithField("count", len(b.tasks)).Debug("board loaded")
	return b
}

func (b *Board) Tasks() []model.Task {
	return slices.Clone(b.tasks)
}

func (b *Board) Len() int {
	return len(b.tasks)
}

func (b *Board) Columns() []model.Column {
	return slices.Clone(b.columns)
}

func (b *Board) HasColumn(status string) bool {
	return b.known[status]
}

func (b *Board) DefaultStatus() string { return b.defaultStatus }

func (b *Board) DoneStatus() string { return b.doneStatus }

// Find returns the task with the given id.
func (b *Board) Find(id string) (model.Task, bool) {
	i := b.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return b.tasks[i], true
}

func (b *Board) index(id string) int {
	return slices.IndexFunc(b.tasks, func(t model.Task) bool { return t.ID == id })
}

// Add appends a task in the default column. Blank input returns
// ErrEmptyText and leaves the board and the slot untouched.
func (b *Board) Add(raw string) (model.Task, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return model.Task{}, ErrEmptyText
	}

	task := model.Task{
		ID:     b.newID(),
		Text:   text,
		Status: b.defaultStatus,
	}
	b.tasks = append(b.tasks, task)
	b.log.WithField("id", task.ID).Debug("task added")

	return task, b.save()
}

// Delete removes the task with the given id. An unknown id is not an error.
func (b *Board) Delete(id string) error {
	before := len(b.tasks)
	b.tasks = slices.DeleteFunc(b.tasks, func(t model.Task) bool { return t.ID == id })
	if len(b.tasks) == before {
		b.log.WithField("id", id).Debug("delete: task not found")
	} else {
		b.log.WithField("id", id).Debug("task deleted")
	}
	return b.save()
}

// Move sets the status of a task. Moving into the done column from any
// other column fires the celebrator once; moving a done task to done again
// does not. An unknown id is a no-op.
func (b *Board) Move(id, target string) error {
	i := b.index(id)
	if i < 0 {
		b.log.WithField("id", id).Debug("move: task not found")
		return nil
	}

	original := b.tasks[i].Status
	b.tasks[i].Status = target
	b.log.WithFields(log.Fields{"id": id, "from": original, "to": target}).Debug("task moved")

	err := b.save()
	if target == b.doneStatus && original != b.doneStatus {
		b.celebrate()
	}
	return err
}

// DropOn finishes a drag gesture over column. It returns true when a task
// was moved; a drop outside a known column only cancels the gesture.
func (b *Board) DropOn(drag *Drag, column string) (bool, error) {
	id, ok := drag.Drop(column)
	if !ok {
		return false, nil
	}
	return true, b.Move(id, column)
}

func (b *Board) Render() Layout {
	return Render(b.tasks, b.columns, b.log)
}

func (b *Board) save() error {
	if err := store.SaveTasks(b.kv, b.key, b.tasks); err != nil {
		b.log.WithError(err).Error("failed to persist tasks")
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func (b *Board) celebrate() {
	if !b.celebration.Enable {
		return
	}
	if b.celebrator == nil {
		b.log.Warn("celebration unavailable: no celebrator configured")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.log.WithField("panic", r).Error("celebrator panicked")
		}
	}()
	if err := b.celebrator.Celebrate(b.celebration); err != nil {
		b.log.WithError(err).Warn("celebration failed")
	}
}
