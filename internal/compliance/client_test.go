package compliance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	inputs []*configservice.PutEvaluationsInput
	out    *configservice.PutEvaluationsOutput
	err    error
}

func (f *fakeAPI) PutEvaluations(ctx context.Context, params *configservice.PutEvaluationsInput, optFns ...func(*configservice.Options)) (*configservice.PutEvaluationsOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	if f.out != nil {
		return f.out, nil
	}
	return &configservice.PutEvaluationsOutput{}, nil
}

func TestClient_PutEvaluation(t *testing.T) {
	api := &fakeAPI{}
	client := NewClientWithAPI(api)

	err := client.PutEvaluation(context.Background(), "tok-1", NewEvaluation("", "Scheduled run", time.Now()))
	require.NoError(t, err)

	require.Len(t, api.inputs, 1)
	assert.Equal(t, "tok-1", aws.ToString(api.inputs[0].ResultToken))
	require.Len(t, api.inputs[0].Evaluations, 1)
	assert.Equal(t, "Scheduled run", aws.ToString(api.inputs[0].Evaluations[0].Annotation))
	assert.Equal(t, types.ComplianceTypeCompliant, api.inputs[0].Evaluations[0].ComplianceType)
}

func TestClient_PutEvaluation_APIError(t *testing.T) {
	apiErr := errors.New("AccessDeniedException")
	client := NewClientWithAPI(&fakeAPI{err: apiErr})

	err := client.PutEvaluation(context.Background(), "tok-1", NewEvaluation("", "Manual run", time.Now()))
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
}

func TestClient_PutEvaluation_FailedEvaluations(t *testing.T) {
	evaluation := NewEvaluation("", "Manual run", time.Now())
	client := NewClientWithAPI(&fakeAPI{
		out: &configservice.PutEvaluationsOutput{
			FailedEvaluations: []types.Evaluation{evaluation.ToAWS()},
		},
	})

	err := client.PutEvaluation(context.Background(), "tok-1", evaluation)
	assert.ErrorIs(t, err, ErrFailedEvaluations)
}

func TestNewClient(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	client, err := NewClient(context.Background(), Options{
		Region:   "us-east-1",
		Endpoint: "http://localhost:4566",
	})
	require.NoError(t, err)

	api, ok := client.api.(*configservice.Client)
	require.True(t, ok)
	assert.Equal(t, "us-east-1", api.Options().Region)
	assert.Equal(t, "http://localhost:4566", aws.ToString(api.Options().BaseEndpoint))
}
