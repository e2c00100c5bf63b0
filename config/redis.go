package config

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

// Enabled 未配置地址时只走数据库
func (r *Redis) Enabled() bool {
	return r != nil && r.Address != ""
}
