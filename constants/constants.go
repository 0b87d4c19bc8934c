package constants

const (
	ResourceType       = "AWS::EC2::SecurityGroup"
	ComplianceType     = "COMPLIANT"
	TimestampLayout    = "2006/01/02 15:04:05"
	TaskCompleted      = "task completed"
	LocalTokenPrefix   = "local-"
	SettingsEnvPrefix  = "CONFIG_RULE"
	LogTimestampLayout = "02-01-2006 15:04:05"
)

// messageType values sent by AWS Config in the invoking event
const (
	MessageTypeNull      = "Null"
	MessageTypeScheduled = "ScheduledNotification"
	MessageTypeChange    = "ConfigurationItemChangeNotification"
)

const (
	AnnotationManual    = "Manual run"
	AnnotationScheduled = "Scheduled run"
	AnnotationChange    = "Resource change run"
)
