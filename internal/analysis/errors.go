package analysis

import (
	"errors"
	"fmt"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/clients/scoring"
)

// Kind classifies a failed run for presentation.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConnectivity Kind = "connectivity"
	KindService      Kind = "service"
	KindData         Kind = "data"
)

// Notification is the single user-visible failure surface. Every error kind
// from any stage converges here; nothing propagates past the orchestrator.
type Notification struct {
	Kind    Kind
	Stage   Stage
	Message string
}

func (n *Notification) Error() string {
	return fmt.Sprintf("%s failed (%s): %s", n.Stage, n.Kind, n.Message)
}

// ErrSuperseded reports that a run was replaced by a newer submission before
// it completed. Its completion was discarded; nothing is shown to the user.
var ErrSuperseded = errors.New("analysis superseded by a newer submission")

// classify maps a collaborator error onto the notification taxonomy. The
// connectivity message names the collaborator as unreachable instead of a
// generic "analysis failed"; service details are shown verbatim.
func classify(stage Stage, err error) *Notification {
	var connErr *scoring.ConnectivityError
	if errors.As(err, &connErr) {
		return &Notification{
			Kind:    KindConnectivity,
			Stage:   stage,
			Message: "Scoring service is unreachable. Please try again later.",
		}
	}

	var svcErr *scoring.ServiceError
	if errors.As(err, &svcErr) {
		return &Notification{Kind: KindService, Stage: stage, Message: svcErr.Detail}
	}

	var dataErr *scoring.DataError
	if errors.As(err, &dataErr) {
		message := "Analysis failed"
		if stage == StageExtract {
			message = "no data"
		}
		return &Notification{Kind: KindData, Stage: stage, Message: message}
	}

	return &Notification{Kind: KindService, Stage: stage, Message: "Analysis failed"}
}
