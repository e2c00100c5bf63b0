package config

type RocketMQ struct {
	NameServer []string `yaml:"nameserver"`

	Producer Producer `yaml:"producer"`

	// 通知事件投递的 topic
	NoticeTopic string `yaml:"notice_topic"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

// Enabled 未配置 nameserver 时不投递消息
func (r *RocketMQ) Enabled() bool {
	return r != nil && len(r.NameServer) > 0 && r.NoticeTopic != ""
}
