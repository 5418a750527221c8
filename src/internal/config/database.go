package config

import (
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/mongodb"

	"github.com/spf13/viper"
)

func NewDatabase(viper *viper.Viper, log log.Log) mongodb.DBInterface {
	db, err := mongodb.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
	}

	return db
}
