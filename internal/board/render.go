package board

import (
	log "github.com/sirupsen/logrus"

	"github.com/nakachan-ing/kanban-cli/internal/model"
)

type ColumnView struct {
	Column model.Column
	Cards  []model.Task
}

// Layout is one rendering of the board: every configured column in
// configured order, each holding its cards in list order.
type Layout struct {
	Columns []ColumnView
	// Hidden counts tasks whose status matches no column.
	Hidden int
}

// Render places every task into the column matching its status. Tasks with
// an unknown status are left out of the layout (and logged) but are not
// removed from tasks.
func Render(tasks []model.Task, columns []model.Column, logger log.FieldLogger) Layout {
	if logger == nil {
		logger = log.StandardLogger()
	}

	layout := Layout{Columns: make([]ColumnView, len(columns))}
	byID := make(map[string]int, len(columns))
	for i, column := range columns {
		layout.Columns[i] = ColumnView{Column: column, Cards: []model.Task{}}
		byID[column.ID] = i
	}

	for _, task := range tasks {
		i, ok := byID[task.Status]
		if !ok {
			logger.WithFields(log.Fields{"id": task.ID, "status": task.Status}).
				Warn("column for status not found, task not rendered")
			layout.Hidden++
			continue
		}
		layout.Columns[i].Cards = append(layout.Columns[i].Cards, task)
	}
	return layout
}

// Column returns the view for a column id.
func (l Layout) Column(id string) (ColumnView, bool) {
	for _, view := range l.Columns {
		if view.Column.ID == id {
			return view, true
		}
	}
	return ColumnView{}, false
}

// Placement maps every rendered card id to its column id.
func (l Layout) Placement() map[string]string {
	placement := map[string]string{}
	for _, view := range l.Columns {
		for _, card := range view.Cards {
			placement[card.ID] = view.Column.ID
		}
	}
	return placement
}

func (l Layout) Visible() int {
	n := 0
	for _, view := range l.Columns {
		n += len(view.Cards)
	}
	return n
}
