package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Redis   *redisConfig
	S3      *s3Config
	Flower  *flowerConfig
	Service *svcConfig
}

type redisConfig struct {
	Hostname string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	Database int    `envconfig:"REDIS_DB" default:"0"`
}

type s3Config struct {
	Endpoint  string `envconfig:"S3_ENDPOINT" default:"s3.us-west-2.amazonaws.com"`
	Bucket    string `envconfig:"S3_BUCKET" default:"production-course-scraper"`
	AccessKey string `envconfig:"AWS_ACCESS_KEY_ID" default:""`
	SecretKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:""`
	Region    string `envconfig:"AWS_REGION" default:"us-west-2"`
	UseSSL    bool   `envconfig:"S3_USE_SSL" default:"true"`
}

type flowerConfig struct {
	URL      string `envconfig:"FLOWER_URL" default:"http://localhost:5555"`
	Username string `envconfig:"FLOWER_BASIC_AUTH_USERNAME" default:"admin"`
	Password string `envconfig:"FLOWER_BASIC_AUTH_PASSWORD" default:"password"`
}

type svcConfig struct {
	Address           string `envconfig:"COURSE_SCRAPER_ADDRESS" default:":8000"`
	MetricsAddress    string `envconfig:"COURSE_SCRAPER_METRICS_ADDRESS" default:":8080"`
	LogLevel          string `envconfig:"COURSE_SCRAPER_LOG_LEVEL" default:"info"`
	AdminUsername     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword     string `envconfig:"ADMIN_PASSWORD" default:"password"`
	StudentManagerURL string `envconfig:"STUDENT_MANAGER_URL" default:"https://api.staging.kogocampus.com/student/"`
}

// New processes the environment into a fresh Config. Callers own the value;
// there is no package-level configuration state.
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
