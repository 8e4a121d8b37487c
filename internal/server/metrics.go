package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	papersGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exampaper_papers_generated_total",
		Help: "Number of question papers assembled successfully.",
	})

	generateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exampaper_generate_failures_total",
		Help: "Number of failed paper generation requests by reason.",
	}, []string{"reason"})

	questionsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exampaper_questions_added_total",
		Help: "Number of questions appended to stores by variant.",
	}, []string{"type"})
)
