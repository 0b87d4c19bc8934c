package app

import (
	"context"
	"io"
	"os"

	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/compliance"
	"github.com/aws/aws-lambda-go/events"
)

// EvaluationSubmitter reports an evaluation to AWS Config.
type EvaluationSubmitter interface {
	PutEvaluation(ctx context.Context, resultToken string, evaluation compliance.Evaluation) error
}

type Config interface {
	Handler() (Response, error)
}

type config struct {
	ctx       context.Context
	event     events.ConfigEvent
	submitter EvaluationSubmitter
	out       io.Writer
}

type Option func(*config)

// WithSubmitter sets the client used when the invocation runs inside Lambda.
func WithSubmitter(submitter EvaluationSubmitter) Option {
	return func(c *config) {
		c.submitter = submitter
	}
}

// WithOutput sets where local runs print the evaluation. Defaults to stdout.
func WithOutput(out io.Writer) Option {
	return func(c *config) {
		c.out = out
	}
}

func New(ctx context.Context, event events.ConfigEvent, opts ...Option) Config {
	c := &config{
		ctx:   ctx,
		event: event,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
