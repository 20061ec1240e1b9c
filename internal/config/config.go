package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Redis     Redis     `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	Google    Google    `mapstructure:",squash"`
	Cache     Cache     `mapstructure:",squash"`
	Sync      Sync      `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Retention Retention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	AllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Meta struct {
	BaseURL                  string  `mapstructure:"meta_base_url"`
	URL                      string  `mapstructure:"meta_url"`
	Version                  string  `mapstructure:"meta_version"`
	AppID                    string  `mapstructure:"meta_app_id"`
	AppSecret                string  `mapstructure:"meta_app_secret"`
	ExchangeLongLived        bool    `mapstructure:"meta_exchange_long_lived"`
	DefaultTokenLifetimeDays int     `mapstructure:"meta_default_token_lifetime_days"`
	TimeoutSeconds           int     `mapstructure:"meta_timeout_seconds"`
	RequestsPerSecond        float64 `mapstructure:"meta_requests_per_second"`
}

type Google struct {
	ClientID          string  `mapstructure:"google_client_id"`
	ClientSecret      string  `mapstructure:"google_client_secret"`
	RedirectURI       string  `mapstructure:"google_redirect_uri"`
	AuthURL           string  `mapstructure:"google_auth_url"`
	TokenURL          string  `mapstructure:"google_token_url"`
	AdminURL          string  `mapstructure:"google_admin_url"`
	DataURL           string  `mapstructure:"google_data_url"`
	TimeoutSeconds    int     `mapstructure:"google_timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"google_requests_per_second"`
}

// Cache guarda os TTLs em segundos de cada recurso sincronizado
type Cache struct {
	CredentialTTLCapSeconds  int `mapstructure:"cache_credential_ttl_cap_seconds"`
	AdAccountsTTLSeconds     int `mapstructure:"cache_ad_accounts_ttl_seconds"`
	CampaignsTTLSeconds      int `mapstructure:"cache_campaigns_ttl_seconds"`
	AdSetsTTLSeconds         int `mapstructure:"cache_ad_sets_ttl_seconds"`
	AdsTTLSeconds            int `mapstructure:"cache_ads_ttl_seconds"`
	InsightsTTLSeconds       int `mapstructure:"cache_insights_ttl_seconds"`
	GoogleAccountsTTLSeconds int `mapstructure:"cache_google_accounts_ttl_seconds"`
	PropertiesTTLSeconds     int `mapstructure:"cache_google_properties_ttl_seconds"`
	ReportTTLSeconds         int `mapstructure:"cache_google_report_ttl_seconds"`
}

type Sync struct {
	SingleFlightRefresh bool `mapstructure:"sync_single_flight_refresh"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Retention struct {
	CronSchedule string `mapstructure:"retention_cron"`
	Days         int    `mapstructure:"retention_days"`
	Enabled      bool   `mapstructure:"retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/funnel?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_EXCHANGE_LONG_LIVED", true)
	viper.SetDefault("META_DEFAULT_TOKEN_LIFETIME_DAYS", 60)
	viper.SetDefault("META_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_REQUESTS_PER_SECOND", 5)

	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:3000/integrations/google/callback")
	viper.SetDefault("GOOGLE_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADMIN_URL", "https://analyticsadmin.googleapis.com/v1alpha")
	viper.SetDefault("GOOGLE_DATA_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("GOOGLE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GOOGLE_REQUESTS_PER_SECOND", 5)

	viper.SetDefault("CACHE_CREDENTIAL_TTL_CAP_SECONDS", 3600)
	viper.SetDefault("CACHE_AD_ACCOUNTS_TTL_SECONDS", 3600)
	viper.SetDefault("CACHE_CAMPAIGNS_TTL_SECONDS", 1800)
	viper.SetDefault("CACHE_AD_SETS_TTL_SECONDS", 1800)
	viper.SetDefault("CACHE_ADS_TTL_SECONDS", 1800)
	viper.SetDefault("CACHE_INSIGHTS_TTL_SECONDS", 7200)
	viper.SetDefault("CACHE_GOOGLE_ACCOUNTS_TTL_SECONDS", 3600)
	viper.SetDefault("CACHE_GOOGLE_PROPERTIES_TTL_SECONDS", 1800)
	viper.SetDefault("CACHE_GOOGLE_REPORT_TTL_SECONDS", 3600)

	viper.SetDefault("SYNC_SINGLE_FLIGHT_REFRESH", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("RETENTION_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("RETENTION_DAYS", 400)
	viper.SetDefault("RETENTION_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Seconds converte um valor de configuração em segundos para time.Duration
func Seconds(value int) time.Duration {
	return time.Duration(value) * time.Second
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
