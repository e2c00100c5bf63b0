package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App          *App          `json:"app" yaml:"app"`
	Redis        *Redis        `json:"redis" yaml:"redis"`
	Database     *Database     `json:"database" yaml:"database"`
	Jwt          *Jwt          `json:"jwt" yaml:"jwt"`
	Server       *Server       `json:"server" yaml:"server"`
	RocketMQ     *RocketMQ     `json:"rocketmq" yaml:"rocketmq"`
	Reputation   *Reputation   `json:"reputation" yaml:"reputation"`
	Notification *Notification `json:"notification" yaml:"notification"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}

type Notification struct {
	// 未读数缓存时间
	UnreadCacheTTL time.Duration `json:"unread_cache_ttl" yaml:"unread_cache_ttl"`
	// 列表最大分页
	MaxPageSize int `json:"max_page_size" yaml:"max_page_size"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 内容并补齐默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()

	if err := conf.Reputation.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Reputation == nil {
		c.Reputation = DefaultReputation()
	}
	c.Reputation.fill()
	if c.Notification == nil {
		c.Notification = &Notification{}
	}
	if c.Notification.UnreadCacheTTL <= 0 {
		c.Notification.UnreadCacheTTL = 10 * time.Minute
	}
	if c.Notification.MaxPageSize <= 0 {
		c.Notification.MaxPageSize = 100
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
