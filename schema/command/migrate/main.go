package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/helpledger/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpledger")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS helpledger`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO helpledger").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.HelpRequest{},
		&schema.Review{},
	).Error; err != nil {
		panic(err)
	}

	if conn := viper.GetString("mongo.conn"); conn != "" {
		schema.NewMongoDBIndexer(conn, viper.GetString("mongo.database")).IndexAll()
	}
}
