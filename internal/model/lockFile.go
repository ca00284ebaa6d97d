package model

type LockFile struct {
	ID        string `yaml:"id"`
	User      string `yaml:"user"`
	Pid       int    `yaml:"pid"`
	DataDir   string `yaml:"data_dir"`
	TimeStamp string `yaml:"timestamp"`
}
