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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	PMS          PMS          `mapstructure:",squash"`
	Yield        Yield        `mapstructure:",squash"`
	YieldRefresh YieldRefresh `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// PMS configura o acesso ao sistema de gestão da propriedade
type PMS struct {
	URL           string        `mapstructure:"pms_url"`
	APIKey        string        `mapstructure:"pms_api_key"`
	Timeout       time.Duration `mapstructure:"pms_timeout"`
	RetryAttempts uint          `mapstructure:"pms_retry_attempts"`
	Enabled       bool          `mapstructure:"pms_enabled"`
}

type Yield struct {
	CacheTTL        time.Duration `mapstructure:"yield_cache_ttl"`
	CacheSize       int           `mapstructure:"yield_cache_size"`
	FetchTimeout    time.Duration `mapstructure:"yield_fetch_timeout"`
	FallbackEnabled bool          `mapstructure:"yield_fallback_enabled"`
	WalkCost        float64       `mapstructure:"yield_walk_cost"`
	Elasticity      float64       `mapstructure:"yield_elasticity"`
}

type YieldRefresh struct {
	HourlyCron        string   `mapstructure:"yield_refresh_hourly_cron"`
	DailyCron         string   `mapstructure:"yield_refresh_daily_cron"`
	Properties        []string `mapstructure:"yield_refresh_properties"`
	HorizonDays       int      `mapstructure:"yield_refresh_horizon_days"`
	MaxConcurrentJobs int      `mapstructure:"yield_refresh_max_concurrent_jobs"`
	AutoApply         bool     `mapstructure:"yield_refresh_auto_apply"`
	Enabled           bool     `mapstructure:"yield_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/yield")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("PMS_URL", "http://localhost:8080/api")
	viper.SetDefault("PMS_API_KEY", "")
	viper.SetDefault("PMS_TIMEOUT", "5s")
	viper.SetDefault("PMS_RETRY_ATTEMPTS", 3)
	viper.SetDefault("PMS_ENABLED", false) // Sem PMS o motor usa apenas dados sintéticos

	viper.SetDefault("YIELD_CACHE_TTL", "2h")
	viper.SetDefault("YIELD_CACHE_SIZE", 512)
	viper.SetDefault("YIELD_FETCH_TIMEOUT", "10s")
	viper.SetDefault("YIELD_FALLBACK_ENABLED", true)
	viper.SetDefault("YIELD_WALK_COST", 150)
	viper.SetDefault("YIELD_ELASTICITY", -1.2)

	// Defaults para o recálculo periódico de yield
	viper.SetDefault("YIELD_REFRESH_HOURLY_CRON", "5 * * * *") // Aos 5 minutos de cada hora
	viper.SetDefault("YIELD_REFRESH_DAILY_CRON", "0 3 * * *")  // Todos os dias às 3h da manhã
	viper.SetDefault("YIELD_REFRESH_PROPERTIES", "")           // Lista separada por vírgula
	viper.SetDefault("YIELD_REFRESH_HORIZON_DAYS", 14)         // 14 dias à frente
	viper.SetDefault("YIELD_REFRESH_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("YIELD_REFRESH_AUTO_APPLY", false)        // Enviar ações ao PMS
	viper.SetDefault("YIELD_REFRESH_ENABLED", false)           // Habilitar recálculo periódico

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.YieldRefresh.Properties = compact(config.YieldRefresh.Properties)
	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact remove entradas vazias geradas por listas separadas por vírgula
func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
