package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppPort       string
	DBDSN         string
	JWTSecret     string
	JWTExpiresMin int

	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Bucket     string

	EmailUser string
	EmailPass string
	SMTPHost  string
	SMTPPort  int

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	FacebookPageID    string
	FacebookPageToken string

	FrontendURL string
}

func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "10080"))
	smtpPort, _ := strconv.Atoi(get("SMTP_PORT", "587"))
	return Config{
		AppPort:       get("APP_PORT", "8080"),
		DBDSN:         must("DB_DSN"),
		JWTSecret:     must("JWT_SECRET"),
		JWTExpiresMin: expires,

		AWSRegion:    get("AWS_REGION", "us-east-2"),
		AWSAccessKey: get("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey: get("AWS_SECRET_ACCESS_KEY", ""),
		S3Bucket:     get("AWS_S3_BUCKET", "bucket-aimob-images"),

		EmailUser: get("EMAIL_USER", ""),
		EmailPass: get("EMAIL_PASS", ""),
		SMTPHost:  get("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  smtpPort,

		TwilioAccountSID: get("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  get("TWILIO_AUTH_TOKEN", ""),
		TwilioFrom:       get("TWILIO_FROM", ""),

		FacebookPageID:    get("FACEBOOK_PAGE_ID", ""),
		FacebookPageToken: get("FACEBOOK_PAGE_ACCESS_TOKEN", ""),

		FrontendURL: get("FRONTEND_URL", "http://localhost:3000"),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
