package model

type Task struct {
	ID     string `json:"id"`     // task-<unix millis>-<suffix>
	Text   string `json:"text"`   // trimmed, never empty
	Status string `json:"status"` // column id: todo, doing, done...
}

type Column struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}
