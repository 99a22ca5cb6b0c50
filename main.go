package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/helpledger/api"
	"github.com/bitmark-inc/helpledger/background"
	"github.com/bitmark-inc/helpledger/ledger"
	"github.com/bitmark-inc/helpledger/metrics"
	"github.com/bitmark-inc/helpledger/store"
)

const observerBuffer = 1024

var (
	server    *api.Server
	ormDB     *gorm.DB
	journal   store.EventJournal
	observers []*ledger.AsyncObserver
)

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

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("ledger.cost.pickup", ledger.DefaultPickupCost)
	viper.SetDefault("ledger.cost.tour", ledger.DefaultTourCost)
	viper.SetDefault("ledger.cost.lodging", ledger.DefaultLodgingCost)
	viper.SetDefault("ledger.reward", ledger.DefaultHelperReward)
}

func openStore() store.LedgerStore {
	switch driver := viper.GetString("store.driver"); driver {
	case "memory":
		return store.NewMemoryStore()
	case "postgres":
		var err error
		ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			log.Panic(err)
		}
		return store.NewORMStore(ormDB)
	default:
		log.Panicf("unknown store driver: %s", driver)
	}
	return nil
}

// observe hands o to the ledger behind its own queue
func observe(l *ledger.Ledger, o ledger.Observer) {
	a := ledger.NewAsyncObserver(o, observerBuffer)
	observers = append(observers, a)
	l.Observe(a)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		for _, o := range observers {
			o.Close()
		}

		if journal != nil {
			log.Info("Shutting down event journal")
			journal.Close()
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Load JWT public key
	jwtPubKeyByte, err := ioutil.ReadFile(viper.GetString("jwt.pubkeyfile"))
	if err != nil {
		log.Panic(err)
	}
	jwtPublicKey, err := jwt.ParseRSAPublicKeyFromPEM(jwtPubKeyByte)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded jwt public key")

	schedule, err := ledger.NewCostSchedule(
		viper.GetInt64("ledger.cost.pickup"),
		viper.GetInt64("ledger.cost.tour"),
		viper.GetInt64("ledger.cost.lodging"),
		viper.GetInt64("ledger.reward"),
	)
	if err != nil {
		log.Panic(err)
	}

	l := ledger.New(openStore(),
		ledger.WithSchedule(schedule),
		ledger.WithObserver(ledger.LogObserver{}),
	)
	log.WithField("prefix", "init").
		WithField("driver", viper.GetString("store.driver")).
		WithField("costs", schedule.Costs()).
		Info("Initialized ledger")

	open, err := l.OpenRequests()
	if err != nil {
		log.Panic(err)
	}
	metrics.SetOpenRequests(len(open))

	// initialise mongodb connections
	if conn := viper.GetString("mongo.conn"); conn != "" {
		opts := options.Client().ApplyURI(conn)
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			log.Panicf("create mongo client with error: %s", err)
		}

		err = mongoClient.Connect(initialCtx)
		if nil != err {
			log.Panicf("connect mongo database with error: %s", err)
		}

		journal = store.NewMongoJournal(mongoClient, viper.GetString("mongo.database"))
		observe(l, background.NewJournalObserver(journal))
		log.WithField("prefix", "init").Info("Initialized event journal")
	}

	// Init redis
	if conn := viper.GetString("redis.conn"); conn != "" {
		var conf = &machineryconf.Config{
			Broker:        conn,
			DefaultQueue:  "helpledger_background",
			ResultBackend: conn,
		}
		machineryServer, err := machinery.NewServer(conf)
		if err != nil {
			log.Panic(err)
		}

		observe(l, background.NewTaskDispatcher(machineryServer, l))
		log.WithField("prefix", "init").Info("Initialized background task dispatcher")
	}

	// Init http server
	server = api.NewServer(l, journal, jwtPublicKey)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
