package cmd

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	JWTSecret       string
	JWTIssuer       string
	JWTAudience     string
	StripeSecretKey string
	AdminEmail      string
	AdminPassword   string
}
