package compliance

import (
	"encoding/json"
	"time"

	"github.com/ABHINAV-SUREKA/aws-config-rule/constants"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// Evaluation is the result reported for one invocation of the rule.
type Evaluation struct {
	ResourceType      string
	ResourceID        string
	ComplianceType    string
	Annotation        string
	OrderingTimestamp time.Time
}

type consoleEvaluation struct {
	ComplianceResourceType string `json:"ComplianceResourceType"`
	ComplianceResourceId   string `json:"ComplianceResourceId"`
	ComplianceType         string `json:"ComplianceType"`
	Annotation             string `json:"Annotation"`
	OrderingTimestamp      string `json:"OrderingTimestamp"`
}

// NewEvaluation builds a COMPLIANT evaluation for the rule's resource type.
func NewEvaluation(resourceID, annotation string, at time.Time) Evaluation {
	return Evaluation{
		ResourceType:      constants.ResourceType,
		ResourceID:        resourceID,
		ComplianceType:    constants.ComplianceType,
		Annotation:        annotation,
		OrderingTimestamp: at,
	}
}

func (e Evaluation) MarshalJSON() ([]byte, error) {
	return json.Marshal(consoleEvaluation{
		ComplianceResourceType: e.ResourceType,
		ComplianceResourceId:   e.ResourceID,
		ComplianceType:         e.ComplianceType,
		Annotation:             e.Annotation,
		OrderingTimestamp:      FormatTimestamp(e.OrderingTimestamp),
	})
}

// ToAWS converts the evaluation into the shape PutEvaluations expects.
func (e Evaluation) ToAWS() types.Evaluation {
	return types.Evaluation{
		ComplianceResourceType: aws.String(e.ResourceType),
		ComplianceResourceId:   aws.String(e.ResourceID),
		ComplianceType:         types.ComplianceType(e.ComplianceType),
		Annotation:             aws.String(e.Annotation),
		OrderingTimestamp:      aws.Time(e.OrderingTimestamp),
	}
}

// FormatTimestamp renders t in the host's local zone as YYYY/MM/DD HH:MM:SS.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(constants.TimestampLayout)
}

func CurrentTime() string {
	return FormatTimestamp(time.Now())
}
