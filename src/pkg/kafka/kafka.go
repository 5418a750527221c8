package kafka

import (
	"github.com/IBM/sarama"

	"wasset-admin/src/pkg/log"
)

type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type syncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(brokers []string, logger log.Log) (Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &syncProducer{producer: producer, log: logger}, nil
}

func (p *syncProducer) Publish(topic string, key, value []byte) error {
	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		p.log.Error("kafka", "error send message", "Publish", err.Error())
		return err
	}

	return nil
}

func (p *syncProducer) Close() error {
	return p.producer.Close()
}
