package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/fincovid/api"
	"github.com/bitmark-inc/fincovid/chart"
	"github.com/bitmark-inc/fincovid/external/coronadata"
	"github.com/bitmark-inc/fincovid/pipeline"
	"github.com/bitmark-inc/fincovid/utils"
)

var (
	server *api.Server
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
	// .env is optional
	_ = godotenv.Load()

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
	viper.SetEnvPrefix("fincovid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("source.url", coronadata.DefaultURL)
	viper.SetDefault("source.timeout", 15*time.Second)
	viper.SetDefault("i18n.language", "fi")
	viper.SetDefault("metrics.prefix", "fincovid")
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown chart server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
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

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	labels, err := chart.LocalizedLabels(utils.NewLocalizer(viper.GetString("i18n.language")))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded chart labels")

	metrics, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix: viper.GetString("metrics.prefix"),
	}, time.Second)
	defer closer.Close()

	httpClient := &http.Client{
		Timeout: viper.GetDuration("source.timeout"),
	}
	source := coronadata.New(viper.GetString("source.url"), httpClient)

	// Init http server
	server = api.NewServer(pipeline.New(source, metrics.SubScope("pipeline")), labels)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
