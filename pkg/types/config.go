package types

// AlertType identifies an alert sink implementation.
type AlertType string

// Supported alert sinks.
const (
	AlertConsole AlertType = "console"
	AlertWebhook AlertType = "webhook"
	AlertFile    AlertType = "file"
	AlertSNS     AlertType = "sns"
	AlertS3      AlertType = "s3"
)

// AlertLevel grades the severity of an alert.
type AlertLevel string

const (
	AlertLevelError   AlertLevel = "error"
	AlertLevelWarning AlertLevel = "warning"
	AlertLevelInfo    AlertLevel = "info"
)

// StoreType identifies a campaign store implementation.
type StoreType string

// Supported campaign stores.
const (
	StoreDynamoDB StoreType = "dynamodb"
	StoreS3       StoreType = "s3"
	StoreFile     StoreType = "file"
)

// BoardConfig configures the board platform API client.
type BoardConfig struct {
	APIURL string `yaml:"apiUrl" json:"apiUrl"`
	// APIToken is normally injected via CAMPAIGNER_API_TOKEN or the
	// secret ARN; a literal value is for local development only.
	APIToken       string `yaml:"apiToken,omitempty" json:"-"`
	APITokenSecret string `yaml:"apiTokenSecretArn,omitempty" json:"apiTokenSecretArn,omitempty"`
	InfraBoardID   string `yaml:"infraBoardId" json:"infraBoardId"`
}

// DynamoDBConfig configures the DynamoDB campaign store.
type DynamoDBConfig struct {
	TableName   string `yaml:"tableName" json:"tableName"`
	Region      string `yaml:"region" json:"region"`
	Endpoint    string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	CreateTable bool   `yaml:"createTable,omitempty" json:"createTable,omitempty"`
}

// S3Config configures the S3 campaign store.
type S3Config struct {
	BucketName string `yaml:"bucketName" json:"bucketName"`
	Prefix     string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Region     string `yaml:"region,omitempty" json:"region,omitempty"`
}

// FileStoreConfig configures the local filesystem campaign store.
type FileStoreConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host,omitempty" json:"host,omitempty"`
	Port int    `yaml:"port" json:"port"`
}

// TelemetryConfig configures the OpenTelemetry exporters.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	Endpoint    string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	ServiceName string `yaml:"serviceName,omitempty" json:"serviceName,omitempty"`
}

// AlertConfig declares one alert sink.
type AlertConfig struct {
	Type       AlertType `yaml:"type" json:"type"`
	URL        string    `yaml:"url,omitempty" json:"url,omitempty"`
	Path       string    `yaml:"path,omitempty" json:"path,omitempty"`
	TopicARN   string    `yaml:"topicArn,omitempty" json:"topicArn,omitempty"`
	BucketName string    `yaml:"bucketName,omitempty" json:"bucketName,omitempty"`
	Prefix     string    `yaml:"prefix,omitempty" json:"prefix,omitempty"`
}

// ProjectConfig represents the top-level campaigner.yaml configuration.
type ProjectConfig struct {
	Store     StoreType        `yaml:"store"`
	Board     *BoardConfig     `yaml:"board"`
	DynamoDB  *DynamoDBConfig  `yaml:"dynamodb,omitempty"`
	S3        *S3Config        `yaml:"s3,omitempty"`
	File      *FileStoreConfig `yaml:"file,omitempty"`
	Server    *ServerConfig    `yaml:"server,omitempty"`
	Telemetry *TelemetryConfig `yaml:"telemetry,omitempty"`
	Alerts    []AlertConfig    `yaml:"alerts,omitempty"`
}
