package rocketmq

import (
	"Quorum/config"
	"Quorum/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// Publisher 消息投递
type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

type Rocketmq struct {
	RocketmqProducer rocketmq.Producer
}

var _ Publisher = (*Rocketmq)(nil)

// NopPublisher 未配置 rocketmq 时使用, 丢弃所有消息
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte) error { return nil }

// NewPublisher 未配置 nameserver 时返回 NopPublisher
func NewPublisher(cfg *config.Config) Publisher {
	if !cfg.RocketMQ.Enabled() {
		log.L.Info("rocketmq not configured, notice events disabled")
		return NopPublisher{}
	}
	p, err := InitProducer(cfg.RocketMQ)
	if err != nil {
		log.L.Error("init producer failed, notice events disabled", zap.Error(err))
		return NopPublisher{}
	}
	return &Rocketmq{RocketmqProducer: p}
}

func InitProducer(cfg *config.RocketMQ) (rocketmq.Producer, error) {
	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		return nil, err
	}
	if err = p.Start(); err != nil {
		return nil, err
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))
	return p, nil
}

func (p *Rocketmq) Publish(ctx context.Context, topic string, body []byte) error {
	res, err := p.RocketmqProducer.SendSync(ctx, primitive.NewMessage(topic, body))
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("topic", topic), zap.String("msg_id", res.MsgID))
	return nil
}

func (p *Rocketmq) Shutdown() error {
	return p.RocketmqProducer.Shutdown()
}
