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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Gemini      Gemini      `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Deployment  Deployment  `mapstructure:",squash"`
	OrphanAudit OrphanAudit `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	// deploys em andamento têm esse prazo para terminar no desligamento
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns           int `mapstructure:"database_max_open_conns"`
	MaxIdleConns           int `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeMinutes int `mapstructure:"database_conn_max_lifetime_minutes"`
}

type Redis struct {
	Addr      string `mapstructure:"redis_addr"`
	Password  string `mapstructure:"redis_password"`
	DB        int    `mapstructure:"redis_db"`
	KeyPrefix string `mapstructure:"redis_key_prefix"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"-"`
	Version string `mapstructure:"meta_version"`
	// Token de sistema usado quando o negócio não informa o próprio
	AccessToken           string `mapstructure:"meta_access_token"`
	RequestTimeoutSeconds int    `mapstructure:"meta_request_timeout_seconds"`
	ReadMaxTries          uint   `mapstructure:"meta_read_max_tries"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	// Issuer vazio aceita tokens de qualquer emissor
	Issuer string `mapstructure:"auth_issuer"`
}

type Deployment struct {
	CampaignPrefix   string   `mapstructure:"deployment_campaign_prefix"`
	MinAdSetBudget   int64    `mapstructure:"deployment_min_adset_budget"`
	DefaultCountries []string `mapstructure:"deployment_default_countries"`
	TimeoutSeconds   int      `mapstructure:"deployment_timeout_seconds"`
	LockTTLSeconds   int      `mapstructure:"deployment_lock_ttl_seconds"`
}

type OrphanAudit struct {
	CronSchedule string `mapstructure:"orphan_audit_cron"`
	LookbackDays int    `mapstructure:"orphan_audit_lookback_days"`
	Enabled      bool   `mapstructure:"orphan_audit_enabled"`
}

func (d Deployment) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

const (
	lockTTLMargin  = time.Minute
	defaultLockTTL = 15 * time.Minute
)

// LockTTL nunca fica abaixo do prazo do deploy mais uma margem e nunca é zero
func (d Deployment) LockTTL() time.Duration {
	ttl := time.Duration(d.LockTTLSeconds) * time.Second
	if timeout := d.Timeout(); timeout > 0 && ttl < timeout+lockTTLMargin {
		ttl = timeout + lockTTLMargin
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return ttl
}

func (s Server) ShutdownTimeout() time.Duration {
	if s.ShutdownTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

func (d Database) ConnMaxLifetime() time.Duration {
	return time.Duration(d.ConnMaxLifetimeMinutes) * time.Minute
}

func (m Meta) RequestTimeout() time.Duration {
	return time.Duration(m.RequestTimeoutSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_launcher?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY_PREFIX", "phoenix")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v21.0")
	viper.SetDefault("META_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_READ_MAX_TRIES", 3)

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ISSUER", "")

	viper.SetDefault("DEPLOYMENT_CAMPAIGN_PREFIX", "[PHOENIX]")
	// unidades mínimas da moeda
	viper.SetDefault("DEPLOYMENT_MIN_ADSET_BUDGET", 100)
	// quando nem a estratégia nem o negócio informam
	viper.SetDefault("DEPLOYMENT_DEFAULT_COUNTRIES", "CO,MX,ES,US")
	viper.SetDefault("DEPLOYMENT_TIMEOUT_SECONDS", 600)
	viper.SetDefault("DEPLOYMENT_LOCK_TTL_SECONDS", 900)

	viper.SetDefault("ORPHAN_AUDIT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("ORPHAN_AUDIT_LOOKBACK_DAYS", 7)
	viper.SetDefault("ORPHAN_AUDIT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	if configured := time.Duration(config.Deployment.LockTTLSeconds) * time.Second; configured != config.Deployment.LockTTL() {
		logrus.WithFields(logrus.Fields{
			"configured": configured.String(),
			"effective":  config.Deployment.LockTTL().String(),
		}).Warn("DEPLOYMENT_LOCK_TTL_SECONDS ajustado ao prazo do deploy")
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

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
