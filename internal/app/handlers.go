package app

import (
	"fmt"
	"time"

	"github.com/ABHINAV-SUREKA/aws-config-rule/constants"
	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/compliance"
)

type Response struct {
	Message string `json:"message"`
}

func (config *config) Handler() (Response, error) {
	logger := config.logger()

	messageType, err := DecodeInvokingEvent(config.event.InvokingEvent)
	if err != nil {
		return Response{}, err
	}
	logger = logger.WithField("messageType", messageType.String())
	logger.Info("Evaluating rule")

	evaluation, err := runOnEventAction(messageType)
	if err != nil {
		return Response{}, err
	}

	if err := config.report(evaluation); err != nil {
		return Response{}, err
	}

	return Response{Message: constants.TaskCompleted}, nil
}

// runOnEventAction selects the action for an AWS Config invocation.
func runOnEventAction(messageType MessageType) (compliance.Evaluation, error) {
	switch messageType {
	case Manual:
		return runManual(), nil
	case Scheduled:
		return runScheduled(), nil
	case ResourceChange:
		return runChanged(), nil
	default:
		return compliance.Evaluation{}, fmt.Errorf("%w: %s", ErrUnknownMessageType, messageType)
	}
}

// runManual handles an on-demand evaluation of the rule.
func runManual() compliance.Evaluation {
	// compliance checks for manual runs go here
	return compliance.NewEvaluation("", constants.AnnotationManual, time.Now())
}

// runScheduled handles a periodic evaluation triggered by AWS Config.
func runScheduled() compliance.Evaluation {
	return compliance.NewEvaluation("", constants.AnnotationScheduled, time.Now())
}

// runChanged handles AWS Config detecting a change to a recorded resource.
func runChanged() compliance.Evaluation {
	return compliance.NewEvaluation("", constants.AnnotationChange, time.Now())
}
