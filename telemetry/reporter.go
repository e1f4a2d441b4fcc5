package telemetry

import (
	"log"

	"github.com/lixenwraith/yes-or-no/game"
	"github.com/lixenwraith/yes-or-no/status"
)

// Reporter logs non-fatal collaborator failures and counts them per operation
type Reporter struct {
	metrics *status.Registry
}

// NewReporter creates a reporter counting into metrics as errors.<op>
func NewReporter(metrics *status.Registry) *Reporter {
	return &Reporter{metrics: metrics}
}

// Report records err for op; nil errors are ignored
func (r *Reporter) Report(op string, err error) {
	if err == nil {
		return
	}
	log.Printf("%s: %v", op, err)
	if r.metrics != nil {
		r.metrics.Ints.Get("errors." + op).Add(1)
	}
}

var _ game.Reporter = (*Reporter)(nil)
