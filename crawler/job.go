package main

import (
	"context"
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/fincovid/chart"
	"github.com/bitmark-inc/fincovid/pipeline"
)

// Job is a single fetch and render run
type Job interface {
	Run(ctx context.Context) error
}

type chartJob struct {
	runner     pipeline.Runner
	labels     chart.Labels
	output     string
	jsonOutput string
}

func (j chartJob) Run(ctx context.Context) error {
	report, err := j.runner.Run(ctx)
	if nil != err {
		return err
	}

	if j.jsonOutput != "" {
		if err := writeJSON(j.jsonOutput, report); nil != err {
			log.WithFields(log.Fields{"prefix": logPrefix, "file": j.jsonOutput, "error": err}).Error("write aggregate")
			return err
		}
		log.WithFields(log.Fields{"prefix": logPrefix, "file": j.jsonOutput}).Info("aggregate written")
	}

	page := chart.NewPage(j.labels.Title)
	defs := chart.Build(report.Result, report.CumulativeConfirmed, report.CumulativeDeaths, j.labels)
	if err := chart.Draw(page.Targets(), defs); nil != err {
		return err
	}

	f, err := os.Create(j.output)
	if nil != err {
		return err
	}
	defer f.Close()

	if err := page.Render(f); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "file": j.output, "error": err}).Error("render charts")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"run":       report.RunID,
		"file":      j.output,
		"confirmed": report.TotalConfirmed,
		"deaths":    report.TotalDeaths,
	}).Info("charts written")

	return nil
}

func writeJSON(file string, v interface{}) error {
	f, err := os.Create(file)
	if nil != err {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newChartJob - new job writing the chart page to output
func newChartJob(runner pipeline.Runner, labels chart.Labels, output, jsonOutput string) Job {
	return &chartJob{
		runner:     runner,
		labels:     labels,
		output:     output,
		jsonOutput: jsonOutput,
	}
}
