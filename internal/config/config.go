package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverMongoDB  = "mongodb"
	DriverPostgres = "postgres"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Mongo          Mongo          `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	CatalogRefresh CatalogRefresh `mapstructure:",squash"`
	Seed           Seed           `mapstructure:",squash"`
}

type App struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Database configura o backend relacional. Driver também seleciona o backend usado pela API.
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type Mongo struct {
	URI              string        `mapstructure:"mongo_uri"`
	Database         string        `mapstructure:"mongo_database"`
	Collection       string        `mapstructure:"mongo_collection"`
	ConnectTimeout   time.Duration `mapstructure:"mongo_connect_timeout"`
	OperationTimeout time.Duration `mapstructure:"mongo_operation_timeout"`
}

type Redis struct {
	Enabled  bool          `mapstructure:"redis_enabled"`
	URL      string        `mapstructure:"redis_url"`
	CacheTTL time.Duration `mapstructure:"catalog_cache_ttl"`
}

type CatalogRefresh struct {
	CronSchedule string `mapstructure:"catalog_refresh_cron"`
	Enabled      bool   `mapstructure:"catalog_refresh_enabled"`
}

// Seed configura o script de importação do CSV
type Seed struct {
	CSVPath   string `mapstructure:"seed_csv_path"`
	BatchSize int    `mapstructure:"seed_batch_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text")

	viper.SetDefault("DATABASE_DRIVER", DriverMongoDB)
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "retail")
	viper.SetDefault("MONGO_COLLECTION", "sales")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	viper.SetDefault("MONGO_OPERATION_TIMEOUT", "15s")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CATALOG_CACHE_TTL", "10m")

	viper.SetDefault("CATALOG_REFRESH_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("CATALOG_REFRESH_ENABLED", false)

	viper.SetDefault("SEED_CSV_PATH", "data/truestate_assignment_dataset.csv")
	viper.SetDefault("SEED_BATCH_SIZE", 1000)
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

	config.Database.Driver = strings.ToLower(strings.TrimSpace(config.Database.Driver))
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s?sslmode=%s",
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// Validate falha apenas para valores que impedem a aplicação de subir
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMongoDB, DriverPostgres:
	default:
		return fmt.Errorf("DATABASE_DRIVER inválido: %q (use %s ou %s)", c.Database.Driver, DriverMongoDB, DriverPostgres)
	}

	if c.Seed.BatchSize <= 0 {
		c.Seed.BatchSize = 1000
	}

	return nil
}

// IsProduction indica se os detalhes de erro devem ser omitidos das respostas
func (a App) IsProduction() bool {
	switch strings.ToLower(a.Env) {
	case "production", "prod":
		return true
	}
	return false
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
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
