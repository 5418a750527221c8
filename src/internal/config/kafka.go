package config

import (
	"strings"

	"wasset-admin/src/pkg/kafka"
	"wasset-admin/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaProducer(config *viper.Viper, log log.Log) kafka.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}

	brokers := strings.Split(config.GetString("kafka.bootstrap.servers"), ",")
	producer, err := kafka.NewProducer(brokers, log)
	if err != nil {
		panic(err)
	}

	return producer
}
