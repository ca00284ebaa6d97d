package model

import "time"

type Config struct {
	DataDir  string `yaml:"data_dir"`
	Editor   string `yaml:"editor"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Storage  struct {
		Backend string `yaml:"backend"` // file, sqlite, memory
		Key     string `yaml:"key"`
		Path    string `yaml:"path"` // sqlite database file
	} `yaml:"storage"`
	Board       BoardConfig       `yaml:"board"`
	Celebration CelebrationConfig `yaml:"celebration"`
}

type BoardConfig struct {
	Columns       []Column `yaml:"columns"`
	DefaultStatus string   `yaml:"default_status"`
	DoneStatus    string   `yaml:"done_status"`
	NoticeSeconds int      `yaml:"notice_seconds"`
}

// NoticeDuration falls back to 3 seconds when unset.
func (b BoardConfig) NoticeDuration() time.Duration {
	if b.NoticeSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(b.NoticeSeconds) * time.Second
}

type CelebrationConfig struct {
	Enable        bool     `yaml:"enable"`
	ParticleCount int      `yaml:"particle_count"`
	Spread        float64  `yaml:"spread"`
	OriginY       float64  `yaml:"origin_y"`
	Colors        []string `yaml:"colors"`
	Frames        int      `yaml:"frames"`
}

func DefaultColumns() []Column {
	return []Column{
		{ID: "todo", Title: "To Do"},
		{ID: "doing", Title: "In Progress"},
		{ID: "done", Title: "Done"},
	}
}

func DefaultCelebration() CelebrationConfig {
	return CelebrationConfig{
		Enable:        true,
		ParticleCount: 180,
		Spread:        100,
		OriginY:       0.5,
		Colors:        []string{"#6366f1", "#ec4899", "#10b981", "#f59e0b", "#3b82f6"},
		Frames:        40,
	}
}

func DefaultConfig() Config {
	config := Config{
		DataDir:  "~/.config/kanban-cli/data",
		Editor:   "vim",
		LogLevel: "info",
		LogFile:  "kanban.log",
		Board: BoardConfig{
			Columns:       DefaultColumns(),
			DefaultStatus: "todo",
			DoneStatus:    "done",
			NoticeSeconds: 3,
		},
		Celebration: DefaultCelebration(),
	}
	config.Storage.Backend = "file"
	config.Storage.Key = "tasks"
	config.Storage.Path = "kanban.db"
	return config
}
