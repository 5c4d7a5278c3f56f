package pipeline

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/fincovid/aggregate"
	"github.com/bitmark-inc/fincovid/external/coronadata"
)

const logPrefix = "pipeline"

// FetchError is returned by Run when the data source could not be read
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "fetch corona data: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Report is the outcome of one fetch and aggregate run
type Report struct {
	RunID               string            `json:"run_id"`
	FetchedAt           time.Time         `json:"fetched_at"`
	Result              *aggregate.Result `json:"result"`
	CumulativeConfirmed []int             `json:"cumulative_confirmed"`
	CumulativeDeaths    []int             `json:"cumulative_deaths"`
	TotalConfirmed      int               `json:"total_confirmed"`
	TotalDeaths         int               `json:"total_deaths"`
}

// Runner - interface to produce a report
type Runner interface {
	Run(ctx context.Context) (*Report, error)
}

// Pipeline fetches the records from a source and aggregates them.
// Every call to Run makes exactly one request to the source.
type Pipeline struct {
	source  coronadata.Source
	metrics tally.Scope
	now     func() time.Time
}

// New returns a pipeline reading from source. A nil scope disables metrics.
func New(source coronadata.Source, scope tally.Scope) *Pipeline {
	if scope == nil {
		scope = tally.NoopScope
	}

	return &Pipeline{
		source:  source,
		metrics: scope,
		now:     time.Now,
	}
}

// Run fetches and aggregates once. A failed fetch returns a *FetchError and no report.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	runID := uuid.New().String()
	logger := log.WithFields(log.Fields{"prefix": logPrefix, "run": runID})

	p.metrics.Counter("runs").Inc(1)

	fetchTimer := p.metrics.Timer("fetch").Start()
	dataset, err := p.source.Fetch(ctx)
	fetchTimer.Stop()
	if nil != err {
		p.metrics.Counter("fetch_failures").Inc(1)
		logger.WithError(err).Error("fetch corona data")
		sentry.CaptureException(err)
		return nil, &FetchError{Err: err}
	}

	fetchedAt := p.now().UTC()

	aggregateTimer := p.metrics.Timer("aggregate").Start()
	var result *aggregate.Result
	if dataset == nil {
		result = aggregate.Aggregate(nil, nil)
	} else {
		result = aggregate.Aggregate(dataset.Confirmed, dataset.Deaths)
	}
	aggregateTimer.Stop()

	r := &Report{
		RunID:               runID,
		FetchedAt:           fetchedAt,
		Result:              result,
		CumulativeConfirmed: result.CumulativeConfirmed(),
		CumulativeDeaths:    result.CumulativeDeaths(),
		TotalConfirmed:      result.ConfirmedCasesByDistricts.Sum(),
		TotalDeaths:         result.DeathCasesByArea.Sum(),
	}

	logger.WithFields(log.Fields{
		"dates":     result.ConfirmedCasesByDate.Len(),
		"districts": result.ConfirmedCasesByDistricts.Len(),
		"confirmed": r.TotalConfirmed,
		"deaths":    r.TotalDeaths,
	}).Info("aggregated corona data")

	return r, nil
}
