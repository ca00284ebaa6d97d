package board

import (
	"errors"
	"fmt"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakachan-ing/kanban-cli/internal/model"
	"github.com/nakachan-ing/kanban-cli/internal/store"
)

type countingCelebrator struct {
	calls []model.CelebrationConfig
	err   error
}

func (c *countingCelebrator) Celebrate(config model.CelebrationConfig) error {
	c.calls = append(c.calls, config)
	return c.err
}

type panickingCelebrator struct{}

func (panickingCelebrator) Celebrate(model.CelebrationConfig) error { panic("canvas missing") }

type failingKV struct{ store.MemoryKV }

func (failingKV) Set(string, []byte) error { return errors.New("quota exceeded") }

type recordingKV struct {
	*store.MemoryKV
	writes int
}

func (r *recordingKV) Set(key string, value []byte) error {
	r.writes++
	return r.MemoryKV.Set(key, value)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type fixture struct {
	board      *Board
	kv         *recordingKV
	celebrator *countingCelebrator
	hook       *test.Hook
}

func newFixture(t *testing.T, seed ...model.Task) fixture {
	t.Helper()
	kv := &recordingKV{MemoryKV: store.NewMemoryKV()}
	if len(seed) > 0 {
		require.NoError(t, store.SaveTasks(kv.MemoryKV, DefaultKey, seed))
	}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	celebrator := &countingCelebrator{}

	b := New(Options{
		Columns:     model.DefaultColumns(),
		KV:          kv,
		Celebrator:  celebrator,
		Logger:      logger,
		NewID:       sequentialIDs(),
	})
	return fixture{board: b, kv: kv, celebrator: celebrator, hook: hook}
}

func persisted(t *testing.T, kv store.KV) []model.Task {
	t.Helper()
	tasks, err := store.LoadTasks(kv, DefaultKey)
	require.NoError(t, err)
	return tasks
}

func TestAddValidText(t *testing.T) {
	f := newFixture(t)

	task, err := f.board.Add("Write docs")
	require.NoError(t, err)

	assert.Equal(t, "Write docs", task.Text)
	assert.Equal(t, "todo", task.Status)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, []model.Task{task}, f.board.Tasks())
	assert.Equal(t, []model.Task{task}, persisted(t, f.kv))
}

func TestAddTrimsInput(t *testing.T) {
	f := newFixture(t)

	task, err := f.board.Add("  \tplan sprint \n")
	require.NoError(t, err)
	assert.Equal(t, "plan sprint", task.Text)
}

func TestAddBlankTextLeavesStateAlone(t *testing.T) {
	f := newFixture(t, model.Task{ID: "a", Text: "A", Status: "todo"})

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := f.board.Add(input)
		assert.ErrorIs(t, err, ErrEmptyText)
	}

	assert.Equal(t, []model.Task{{ID: "a", Text: "A", Status: "todo"}}, f.board.Tasks())
	assert.Zero(t, f.kv.writes)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	f := newFixture(t)

	for _, text := range []string{"one", "two", "three"} {
		_, err := f.board.Add(text)
		require.NoError(t, err)
	}

	var texts []string
	for _, task := range f.board.Tasks() {
		texts = append(texts, task.Text)
	}
	assert.Equal(t, []string{"one", "two", "three"}, texts)
	assert.Equal(t, []string{"id-1", "id-2", "id-3"}, ids(f.board.Tasks()))
}

func TestDeleteExistingTask(t *testing.T) {
	f := newFixture(t,
		model.Task{ID: "1", Text: "A", Status: "todo"},
		model.Task{ID: "2", Text: "B", Status: "doing"},
	)

	require.NoError(t, f.board.Delete("1"))

	want := []model.Task{{ID: "2", Text: "B", Status: "doing"}}
	assert.Equal(t, want, f.board.Tasks())
	assert.Equal(t, want, persisted(t, f.kv))
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	f := newFixture(t, model.Task{ID: "1", Text: "A", Status: "todo"})

	require.NoError(t, f.board.Delete("nope"))

	assert.Equal(t, []model.Task{{ID: "1", Text: "A", Status: "todo"}}, f.board.Tasks())
	for _, entry := range f.hook.AllEntries() {
		assert.Greater(t, entry.Level, log.ErrorLevel)
	}
}

func TestMoveIntoDoneCelebratesOnce(t *testing.T) {
	f := newFixture(t, model.Task{ID: "1", Text: "A", Status: "doing"})

	require.NoError(t, f.board.Move("1", "done"))
	task, ok := f.board.Find("1")
	require.True(t, ok)
	assert.Equal(t, "done", task.Status)
	require.Len(t, f.celebrator.calls, 1)
	assert.Equal(t, 180, f.celebrator.calls[0].ParticleCount)

	require.NoError(t, f.board.Move("1", "done"))
	task, _ = f.board.Find("1")
	assert.Equal(t, "done", task.Status)
	assert.Len(t, f.celebrator.calls, 1)
}

func TestMoveOutOfDoneAndBackCelebratesAgain(t *testing.T) {
	f := newFixture(t, model.Task{ID: "1", Text: "A", Status: "done"})

	require.NoError(t, f.board.Move("1", "doing"))
	assert.Empty(t, f.celebrator.calls)
	require.NoError(t, f.board.Move("1", "done"))
	assert.Len(t, f.celebrator.calls, 1)
}

func TestMoveDoesNotReorder(t *testing.T) {
	f := newFixture(t,
		model.Task{ID: "1", Text: "A", Status: "todo"},
		model.Task{ID: "2", Text: "B", Status: "todo"},
		model.Task{ID: "3", Text: "C", Status: "todo"},
	)

	require.NoError(t, f.board.Move("1", "doing"))
	assert.Equal(t, []string{"1", "2", "3"}, ids(f.board.Tasks()))
	assert.Equal(t, "doing", persisted(t, f.kv)[0].Status)
}

func TestMoveSameStatusStillPersists(t *testing.T) {
	f := newFixture(t, model.Task{ID: "1", Text: "A", Status: "todo"})

	require.NoError(t, f.board.Move("1", "todo"))
	assert.Equal(t, 1, f.kv.writes)
	assert.Empty(t, f.celebrator.calls)
}

func TestMoveUnknownIDIsNoop(t *testing.T) {
	f := newFixture(t, model.Task{ID: "1", Text: "A", Status: "todo"})

	require.NoError(t, f.board.Move("ghost", "done"))
	assert.Zero(t, f.kv.writes)
	assert.Empty(t, f.celebrator.calls)
	assert.Equal(t, "todo", f.board.Tasks()[0].Status)
}

func TestCelebratorFailureDoesNotAffectMove(t *testing.T) {
	tests := map[string]Celebrator{
		"error":       &countingCelebrator{err: errors.New("no canvas")},
		"panic":       panickingCelebrator{},
		"unavailable": nil,
	}

	for name, celebrator := range tests {
		t.Run(name, func(t *testing.T) {
			kv := store.NewMemoryKV()
			require.NoError(t, store.SaveTasks(kv, DefaultKey, []model.Task{{ID: "1", Text: "A", Status: "todo"}}))
			logger, hook := test.NewNullLogger()

			b := New(Options{KV: kv, Celebrator: celebrator, Logger: logger})
			require.NoError(t, b.Move("1", "done"))

			assert.Equal(t, "done", b.Tasks()[0].Status)
			assert.Equal(t, "done", persisted(t, kv)[0].Status)
			assert.NotEmpty(t, hook.AllEntries())
		})
	}
}

func TestCelebrationDisabled(t *testing.T) {
	f := newFixture(t, model.Task{ID: "1", Text: "A", Status: "todo"})
	f.board.celebration.Enable = false

	require.NoError(t, f.board.Move("1", "done"))
	assert.Empty(t, f.celebrator.calls)
}

func TestCelebrationDisabledByConfig(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, store.SaveTasks(kv, DefaultKey, []model.Task{{ID: "1", Text: "A", Status: "todo"}}))
	config := model.DefaultConfig()
	config.Celebration.Enable = false
	config.Celebration.ParticleCount = 0
	celebrator := &countingCelebrator{}

	opts := OptionsFromConfig(config, kv, celebrator)
	opts.Logger = nullLogger()
	b := New(opts)
	require.NoError(t, b.Move("1", "done"))

	assert.Empty(t, celebrator.calls)
}

func TestPersistenceErrorIsReturned(t *testing.T) {
	b := New(Options{KV: &failingKV{}, Logger: nullLogger()})

	task, err := b.Add("A")
	assert.ErrorContains(t, err, "persist tasks")
	assert.Equal(t, "A", task.Text)
	assert.Equal(t, 1, b.Len())
}

func TestRoundTripAcrossInstances(t *testing.T) {
	f := newFixture(t)
	for _, text := range []string{"A", "B", "C", "D"} {
		_, err := f.board.Add(text)
		require.NoError(t, err)
	}
	require.NoError(t, f.board.Move("id-2", "doing"))
	require.NoError(t, f.board.Move("id-3", "done"))

	reloaded := New(Options{KV: f.kv, Logger: nullLogger()})
	assert.Equal(t, f.board.Tasks(), reloaded.Tasks())
}

func TestMalformedSlotStartsEmpty(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(DefaultKey, []byte(`not json`)))
	logger, hook := test.NewNullLogger()

	b := New(Options{KV: kv, Logger: logger})

	assert.Zero(t, b.Len())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
}

func TestUnknownStatusHiddenButRetained(t *testing.T) {
	f := newFixture(t,
		model.Task{ID: "1", Text: "A", Status: "todo"},
		model.Task{ID: "2", Text: "B", Status: "archived"},
	)

	layout := f.board.Render()

	assert.NotContains(t, layout.Placement(), "2")
	assert.Equal(t, 1, layout.Hidden)
	assert.Equal(t, 2, f.board.Len())

	require.NoError(t, f.board.Delete("missing"))
	assert.Len(t, persisted(t, f.kv), 2)

	var warned bool
	for _, entry := range f.hook.AllEntries() {
		if entry.Level == log.WarnLevel && entry.Data["status"] == "archived" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestRenderIsIdempotent(t *testing.T) {
	f := newFixture(t,
		model.Task{ID: "1", Text: "A", Status: "todo"},
		model.Task{ID: "2", Text: "B", Status: "done"},
		model.Task{ID: "3", Text: "C", Status: "todo"},
		model.Task{ID: "4", Text: "D", Status: "doing"},
	)

	first := f.board.Render()
	second := f.board.Render()

	assert.Equal(t, first, second)
	todo, ok := first.Column("todo")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "3"}, ids(todo.Cards))
	assert.Equal(t, 4, first.Visible())
	assert.Equal(t, []string{"todo", "doing", "done"}, columnIDs(first))
}

func TestRenderEmptyColumnsPresent(t *testing.T) {
	layout := Render(nil, model.DefaultColumns(), nullLogger())

	require.Len(t, layout.Columns, 3)
	for _, view := range layout.Columns {
		assert.NotNil(t, view.Cards)
		assert.Empty(t, view.Cards)
	}
}

func TestInjectedColumns(t *testing.T) {
	columns := []model.Column{{ID: "backlog"}, {ID: "review"}, {ID: "shipped"}}
	celebrator := &countingCelebrator{}
	b := New(Options{
		Columns:       columns,
		DefaultStatus: "backlog",
		DoneStatus:    "shipped",
		Celebrator:    celebrator,
		Logger:        nullLogger(),
	})

	task, err := b.Add("A")
	require.NoError(t, err)
	assert.Equal(t, "backlog", task.Status)
	assert.True(t, b.HasColumn("review"))
	assert.False(t, b.HasColumn("done"))

	require.NoError(t, b.Move(task.ID, "done"))
	assert.Empty(t, celebrator.calls)
	assert.Equal(t, 1, b.Render().Hidden)

	require.NoError(t, b.Move(task.ID, "shipped"))
	assert.Len(t, celebrator.calls, 1)
}

func TestDropOnMovesTask(t *testing.T) {
	f := newFixture(t, model.Task{ID: "1", Text: "A", Status: "doing"})
	drag := NewDrag(f.board.Columns())

	_, ok := drag.Start("1", false)
	require.True(t, ok)
	require.True(t, drag.Over("done"))

	moved, err := f.board.DropOn(drag, "done")
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "done", f.board.Tasks()[0].Status)
	assert.Len(t, f.celebrator.calls, 1)
	assert.Equal(t, DragIdle, drag.State())

	drag.End()
	assert.Len(t, f.celebrator.calls, 1)
	assert.Equal(t, 1, f.kv.writes)
}

func TestDropOnInvalidTargetCancels(t *testing.T) {
	f := newFixture(t, model.Task{ID: "1", Text: "A", Status: "todo"})
	drag := NewDrag(f.board.Columns())
	drag.Start("1", false)

	moved, err := f.board.DropOn(drag, "")
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "todo", f.board.Tasks()[0].Status)
	assert.Zero(t, f.kv.writes)
}

func TestOptionsFromConfig(t *testing.T) {
	config := model.DefaultConfig()
	config.Storage.Key = "board"
	kv := store.NewMemoryKV()

	opts := OptionsFromConfig(config, kv, nil)
	assert.Equal(t, "board", opts.Key)
	assert.Equal(t, "todo", opts.DefaultStatus)
	assert.Equal(t, "done", opts.DoneStatus)
	assert.Len(t, opts.Columns, 3)
	assert.Same(t, kv, opts.KV)
}

func nullLogger() log.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ID)
	}
	return out
}

func columnIDs(layout Layout) []string {
	out := make([]string, 0, len(layout.Columns))
	for _, view := range layout.Columns {
		out = append(out, view.Column.ID)
	}
	return out
}
