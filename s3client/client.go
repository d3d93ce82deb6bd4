package s3client

import (
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

type EnvironmentConfig struct {
	BucketName  string `envconfig:"JUICER_S3_BUCKET" default:""`
	Region      string `envconfig:"JUICER_S3_REGION" default:"eu-west-1"`
	AwsEndpoint string `envconfig:"JUICER_S3_ENDPOINT" default:""`
	AccessKeyID string `envconfig:"JUICER_S3_ACCESS_ID" default:""`
	AccessKey   string `envconfig:"JUICER_S3_ACCESS_KEY" default:""`
	Prefix      string `envconfig:"JUICER_S3_PREFIX" default:"juicer"`
}

// Enabled reports whether a bucket is configured.
func (env EnvironmentConfig) Enabled() bool {
	return env.BucketName != ""
}

func ReadEnvironment() (EnvironmentConfig, error) {
	var env EnvironmentConfig
	err := envconfig.Process("", &env)
	return env, err
}

// Client downloads linguistic resources from a bucket.
type Client struct {
	bucketName string
	prefix     string
	downloader *s3manager.Downloader
	log        zerolog.Logger
}

func New(env EnvironmentConfig, log zerolog.Logger) (*Client, error) {
	sess, err := session.NewSession(createConfig(env, log))
	if err != nil {
		log.Error().Err(err).Msg("Could not initialize S3 session")
		return nil, err
	}

	return &Client{
		bucketName: env.BucketName,
		prefix:     env.Prefix,
		downloader: s3manager.NewDownloader(sess),
		log:        log,
	}, nil
}

// Fetch downloads <prefix>/<name>.
func (client *Client) Fetch(name string) ([]byte, error) {
	key := path.Join(client.prefix, name)
	log := client.log.With().
		Str("key", key).
		Str("bucket", client.bucketName).Logger()

	buf := aws.NewWriteAtBuffer([]byte{})
	log.Debug().Msg("Downloading file")

	size, err := client.downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(client.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to download file")
		return nil, fmt.Errorf("s3://%s/%s: %w", client.bucketName, key, err)
	}
	log.Debug().Msgf("Downloaded %v bytes", size)
	return buf.Bytes(), nil
}

func createConfig(env EnvironmentConfig, log zerolog.Logger) *aws.Config {
	cfg := aws.NewConfig().
		WithRegion(env.Region).
		WithMaxRetries(4).
		WithLogger(getLogger(log)).
		WithLogLevel(aws.LogOff)

	if env.AccessKeyID != "" && env.AccessKey != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(env.AccessKeyID, env.AccessKey, ""))
	}
	if env.AwsEndpoint != "" {
		cfg = cfg.WithEndpoint(env.AwsEndpoint).
			WithS3ForcePathStyle(true)
	}
	return cfg
}

type s3Logger struct {
	log zerolog.Logger
}

func getLogger(log zerolog.Logger) *s3Logger {
	return &s3Logger{log}
}

func (logger *s3Logger) Log(v ...interface{}) {
	logger.log.Debug().Msg(fmt.Sprint(v...))
}
