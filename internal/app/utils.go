package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/compliance"
	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"
)

var ErrNoSubmitter = errors.New("no AWS Config client configured")

// InLambda reports whether ctx carries Lambda invocation metadata.
func InLambda(ctx context.Context) bool {
	_, ok := lambdacontext.FromContext(ctx)
	return ok
}

func (config *config) logger() *log.Entry {
	fields := log.Fields{
		"rule":    config.event.ConfigRuleName,
		"account": config.event.AccountID,
	}
	if lc, ok := lambdacontext.FromContext(config.ctx); ok {
		fields["requestId"] = lc.AwsRequestID
	}
	return log.WithFields(fields)
}

// report prints the evaluation on local runs and sends it to AWS Config otherwise.
func (config *config) report(evaluation compliance.Evaluation) error {
	if !InLambda(config.ctx) {
		return config.printEvaluation(evaluation)
	}

	if config.submitter == nil {
		return ErrNoSubmitter
	}
	return config.submitter.PutEvaluation(config.ctx, config.event.ResultToken, evaluation)
}

func (config *config) printEvaluation(evaluation compliance.Evaluation) error {
	resultByteArr, err := json.Marshal(evaluation)
	if err != nil {
		return err
	}
	config.logger().Infof("Evaluation: %s", resultByteArr)

	if _, err := fmt.Fprintln(config.out, string(resultByteArr)); err != nil {
		return fmt.Errorf("failed to print evaluation: %w", err)
	}
	return nil
}
