package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/helpledger/background"
	"github.com/bitmark-inc/helpledger/external/webhook"
	"github.com/bitmark-inc/helpledger/utils"
)

var manager *background.BackgroundManager

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpledger")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("background.concurrency", 5)
}

func notificationCenter() background.NotificationCenter {
	url := viper.GetString("notification.webhook.url")
	if url == "" {
		log.WithField("prefix", "init").Warn("No notification webhook. Notifications go to the log.")
		return background.LogNotificationCenter{}
	}

	client := webhook.New(url, viper.GetString("notification.webhook.token"), &http.Client{
		Timeout: 15 * time.Second,
	})
	return background.NewWebhookNotificationCenter(client)
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Worker is preparing to shutdown")
		if manager != nil {
			manager.Quit()
		}
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	panicIfError(utils.InitI18NBundle(viper.GetString("i18n.dir")))

	var conf = &config.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "helpledger_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	taskServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	manager = background.New(notificationCenter(), taskServer)
	panicIfError(manager.RegisterTasks())

	if err := manager.Run(viper.GetInt("background.concurrency")); err != nil {
		log.Panic(err)
	}
}
