package coronadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/fincovid/schema"
)

const (
	logPrefix = "coronadata"

	// DefaultURL is the Finnish corona data endpoint published by Helsingin Sanomat
	DefaultURL = "https://w3qa5ydb4l.execute-api.eu-west-1.amazonaws.com/prod/finnishCoronaData/v2"
)

var (
	ErrUnexpectedStatus = fmt.Errorf("unexpected response status")
	ErrDecodeDataset    = fmt.Errorf("decode dataset fail")
)

// Source - interface to fetch confirmed and death cases
type Source interface {
	Fetch(ctx context.Context) (*schema.Dataset, error)
}

type source struct {
	url    string
	client *http.Client
}

func (s source) Fetch(ctx context.Context) (*schema.Dataset, error) {
	data, err := s.get(ctx)
	if nil != err {
		return nil, err
	}

	var dataset schema.Dataset
	if err := json.Unmarshal(data, &dataset); nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("decode json")
		return nil, fmt.Errorf("%w: %s", ErrDecodeDataset, err)
	}

	if dataset.Confirmed == nil {
		dataset.Confirmed = []schema.CaseRecord{}
	}

	if dataset.Deaths == nil {
		dataset.Deaths = []schema.DeathRecord{}
	}

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"confirmed": len(dataset.Confirmed),
		"deaths":    len(dataset.Deaths),
	}).Debug("data from source")

	return &dataset, nil
}

func (s source) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if nil != err {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    s.url,
			"error":  err,
		}).Error("get corona data")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    s.url,
			"status": resp.StatusCode,
		}).Error("get corona data")
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("read corona data response")
		return nil, err
	}

	return data, nil
}

// New - new corona data source, falls back to DefaultURL and http.DefaultClient
func New(url string, client *http.Client) Source {
	u := DefaultURL
	if url != "" {
		u = url
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &source{
		url:    u,
		client: client,
	}
}
