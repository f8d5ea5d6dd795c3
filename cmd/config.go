package cmd

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	ElasticURL      string
	ElasticUsername string
	ElasticPassword string
	JWTSecret       string
	AdminPassword   string
	ReindexSchedule string
}
