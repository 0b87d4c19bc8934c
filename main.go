package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ABHINAV-SUREKA/aws-config-rule/constants"
	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/app"
	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fixture is an invocation event as written by hand, in YAML or JSON.
// invokingEvent may be the serialized string AWS Config sends or a plain mapping.
type fixture struct {
	AccountID      string    `yaml:"accountId"`
	ConfigRuleName string    `yaml:"configRuleName"`
	ConfigRuleArn  string    `yaml:"configRuleArn"`
	EventLeftScope bool      `yaml:"eventLeftScope"`
	InvokingEvent  yaml.Node `yaml:"invokingEvent"`
	ResultToken    string    `yaml:"resultToken"`
	RuleParameters string    `yaml:"ruleParameters"`
	Version        string    `yaml:"version"`
}

func loadEvent(r io.Reader) (events.ConfigEvent, error) {
	var f fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return events.ConfigEvent{}, fmt.Errorf("failed to parse event: %w", err)
	}

	invokingEvent, err := invokingEventString(&f.InvokingEvent)
	if err != nil {
		return events.ConfigEvent{}, err
	}

	return events.ConfigEvent{
		AccountID:      f.AccountID,
		ConfigRuleName: f.ConfigRuleName,
		ConfigRuleArn:  f.ConfigRuleArn,
		EventLeftScope: f.EventLeftScope,
		InvokingEvent:  invokingEvent,
		ResultToken:    f.ResultToken,
		RuleParameters: f.RuleParameters,
		Version:        f.Version,
	}, nil
}

func invokingEventString(node *yaml.Node) (string, error) {
	switch node.Kind {
	case 0:
		return "", nil
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.MappingNode:
		nested := make(map[string]interface{})
		if err := node.Decode(&nested); err != nil {
			return "", fmt.Errorf("failed to parse invokingEvent: %w", err)
		}
		byteArr, err := json.Marshal(nested)
		if err != nil {
			return "", err
		}
		return string(byteArr), nil
	}
	return "", fmt.Errorf("invokingEvent must be a string or a mapping")
}

func syntheticEvent(messageType string) (events.ConfigEvent, error) {
	byteArr, err := json.Marshal(map[string]string{"messageType": messageType})
	if err != nil {
		return events.ConfigEvent{}, err
	}
	return events.ConfigEvent{InvokingEvent: string(byteArr)}, nil
}

func runLocal(ctx context.Context, event events.ConfigEvent, out io.Writer) (app.Response, error) {
	if event.ResultToken == "" {
		event.ResultToken = constants.LocalTokenPrefix + uuid.NewString()
	}
	log.Infof("Running rule locally with result token %s", event.ResultToken)
	return app.New(ctx, event, app.WithOutput(out)).Handler()
}

func newRootCmd() *cobra.Command {
	var (
		eventPath   string
		messageType string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:          "config-rule",
		Short:        "Run the AWS Config rule handler locally",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Configure(cmd.ErrOrStderr(), logLevel, "text"); err != nil {
				return err
			}

			var (
				event events.ConfigEvent
				err   error
			)
			switch {
			case messageType != "":
				event, err = syntheticEvent(messageType)
			case eventPath == "-":
				event, err = loadEvent(cmd.InOrStdin())
			case eventPath != "":
				var file *os.File
				file, err = os.Open(eventPath)
				if err != nil {
					return err
				}
				defer file.Close()
				event, err = loadEvent(file)
			default:
				return errors.New("one of --event or --message-type is required")
			}
			if err != nil {
				return err
			}

			resp, err := runLocal(cmd.Context(), event, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			log.Info(resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&eventPath, "event", "e", "", "path to an invocation event in YAML or JSON, - for stdin")
	cmd.Flags().StringVarP(&messageType, "message-type", "m", "", "build an event with this messageType instead of reading one")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
