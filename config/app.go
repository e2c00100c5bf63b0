package config

type App struct {
	Name  string `json:"name" yaml:"name"`
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`

	// 雪花算法节点号, 多实例部署时各不相同
	NodeID int64 `json:"node_id" yaml:"node_id"`
}
