package compliance

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
	log "github.com/sirupsen/logrus"
)

var ErrFailedEvaluations = errors.New("AWS Config rejected evaluations")

// EvaluationsAPI is the part of the AWS Config client the rule needs.
type EvaluationsAPI interface {
	PutEvaluations(ctx context.Context, params *configservice.PutEvaluationsInput, optFns ...func(*configservice.Options)) (*configservice.PutEvaluationsOutput, error)
}

type Options struct {
	Region   string
	Endpoint string
}

// Client submits evaluations to AWS Config.
type Client struct {
	api EvaluationsAPI
}

// NewClient loads the default AWS configuration and builds an AWS Config client from it.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	api := configservice.NewFromConfig(cfg, func(o *configservice.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return NewClientWithAPI(api), nil
}

func NewClientWithAPI(api EvaluationsAPI) *Client {
	return &Client{api: api}
}

// PutEvaluation sends a single evaluation correlated by resultToken.
func (c *Client) PutEvaluation(ctx context.Context, resultToken string, evaluation Evaluation) error {
	out, err := c.api.PutEvaluations(ctx, &configservice.PutEvaluationsInput{
		ResultToken: aws.String(resultToken),
		Evaluations: []types.Evaluation{evaluation.ToAWS()},
	})
	if err != nil {
		return fmt.Errorf("error sending evaluation to AWS Config: %w", err)
	}

	if out != nil && len(out.FailedEvaluations) > 0 {
		for _, failed := range out.FailedEvaluations {
			log.WithFields(log.Fields{
				"resourceType": aws.ToString(failed.ComplianceResourceType),
				"resourceId":   aws.ToString(failed.ComplianceResourceId),
			}).Error("evaluation rejected by AWS Config")
		}
		return fmt.Errorf("%w: %d of 1", ErrFailedEvaluations, len(out.FailedEvaluations))
	}

	log.Infof("Successfully sent evaluation to AWS Config: %s", evaluation.Annotation)
	return nil
}
