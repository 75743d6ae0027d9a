package storage

// Config holds configuration for the snapshot storage provider.
type Config struct {
	// Enabled turns durable checkpointing on. When false the service keeps
	// all mapping state in memory and skips storage entirely.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store snapshots in.
	Bucket string `mapstructure:"bucket" default:"sku-snapshots"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
