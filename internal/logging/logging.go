package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/ABHINAV-SUREKA/aws-config-rule/constants"
	log "github.com/sirupsen/logrus"
)

// Configure sets the level and formatter of the standard logrus logger.
// format is either "text" or "json".
func Configure(out io.Writer, level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{
			TimestampFormat: constants.LogTimestampLayout,
			FullTimestamp:   true,
		})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	log.SetLevel(lvl)
	if out != nil {
		log.SetOutput(out)
	}
	return nil
}
