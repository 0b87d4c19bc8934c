package main

import (
	"context"
	"os"

	"github.com/ABHINAV-SUREKA/aws-config-rule/constants"
	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/app"
	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/compliance"
	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/logging"
	"github.com/ABHINAV-SUREKA/aws-config-rule/internal/settings"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"
)

var (
	client *compliance.Client
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: constants.LogTimestampLayout,
		FullTimestamp:   true,
	})
}

func HandleLambdaEvent(ctx context.Context, event events.ConfigEvent) (app.Response, error) {
	return app.New(ctx, event, app.WithSubmitter(client)).Handler()
}

func main() {
	s, err := settings.Load(os.Getenv(constants.SettingsEnvPrefix + "_SETTINGS_FILE"))
	if err != nil {
		log.Fatalf("Error loading settings: %s", err)
	}
	if err := logging.Configure(nil, s.Log.Level, s.Log.Format); err != nil {
		log.Fatalf("Error configuring logging: %s", err)
	}

	client, err = compliance.NewClient(context.Background(), compliance.Options{
		Region:   s.AWS.Region,
		Endpoint: s.AWS.Endpoint,
	})
	if err != nil {
		log.Fatalf("Error creating AWS Config client: %s", err)
	}

	lambda.Start(HandleLambdaEvent)
}
