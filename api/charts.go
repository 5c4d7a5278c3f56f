package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/fincovid/chart"
	"github.com/bitmark-inc/fincovid/pipeline"
)

func (s *Server) definitions(r *pipeline.Report) []chart.Definition {
	return chart.Build(r.Result, r.CumulativeConfirmed, r.CumulativeDeaths, s.labels)
}

// chartPage runs the pipeline once and returns the six charts as a html page
func (s *Server) chartPage(c *gin.Context) {
	report, err := s.runner.Run(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	page := chart.NewPage(s.labels.Title)
	if err := chart.Draw(page.Targets(), s.definitions(report)); err != nil {
		log.WithError(err).Error("draw charts")
		abortWithEncoding(c, http.StatusInternalServerError, errorDrawCharts, err)
		return
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		log.WithError(err).Error("render chart page")
		abortWithEncoding(c, http.StatusInternalServerError, errorDrawCharts, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) aggregate(c *gin.Context) {
	report, err := s.runner.Run(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) chartDefinitions(c *gin.Context) {
	report, err := s.runner.Run(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id": report.RunID,
		"charts": s.definitions(report),
	})
}
