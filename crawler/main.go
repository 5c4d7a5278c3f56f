package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/fincovid/chart"
	"github.com/bitmark-inc/fincovid/external/coronadata"
	"github.com/bitmark-inc/fincovid/pipeline"
	"github.com/bitmark-inc/fincovid/utils"
)

const (
	logPrefix      = "crawler"
	defaultTimeout = 15 * time.Second
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

	viper.SetDefault("source.url", coronadata.DefaultURL)
	viper.SetDefault("source.timeout", defaultTimeout)
	viper.SetDefault("i18n.language", "fi")
}

func main() {
	var configFile, output, jsonOutput string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&output, "o", "charts.html", "path of the rendered chart page")
	flag.StringVar(&jsonOutput, "json", "", "[optional] path to write the aggregate as json")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         viper.GetString("sentry.dsn"),
		Environment: viper.GetString("sentry.environment"),
	}); err != nil {
		log.Error(err)
	}
	defer sentry.Flush(5 * time.Second)

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panic(err)
	}
	labels, err := chart.LocalizedLabels(utils.NewLocalizer(viper.GetString("i18n.language")))
	if err != nil {
		log.Panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("source.timeout"))
	defer cancel()

	source := coronadata.New(viper.GetString("source.url"), &http.Client{})
	job := newChartJob(pipeline.New(source, nil), labels, output, jsonOutput)

	if err := job.Run(ctx); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("chart job failed")
		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}
}
