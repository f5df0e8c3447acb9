package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de armazenamento de registros suportados.
const (
	StoreSheets   = "sheets"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config agrupa a configuração da aplicação (lida via Viper do ambiente e, opcionalmente, de arquivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	Sheets  SheetsConfig
	DB      DBConfig
	Admin   AdminConfig
	Session SessionConfig
	Redis   RedisConfig
	Broker  BrokerConfig
}

// AppConfig configuração geral.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Timezone string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig escolhe o adaptador da planilha: sheets, postgres ou memory.
type StoreConfig struct {
	Driver string
}

// SheetsConfig acesso ao Google Sheets por conta de serviço.
type SheetsConfig struct {
	CredentialsFile string
	CredentialsJSON string // alternativa ao arquivo, útil em contêineres
	SpreadsheetID   string
	SheetName       string
	Timeout         time.Duration
}

// DBConfig configuração do PostgreSQL.
// Se DatabaseURL não estiver vazio, é usado como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SheetName   string // nome lógico da planilha dentro da tabela sheet_rows
}

// ConnectionString devolve DATABASE_URL se definido; caso contrário o DSN montado.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN monta o connection string com URL encoding para caracteres especiais.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// AdminConfig credenciais do administrador (comparação exata, sem hash).
type AdminConfig struct {
	User     string
	Password string
}

// SessionConfig assinatura e validade do token de sessão.
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// RedisConfig vazio em URL = sessões em memória.
type RedisConfig struct {
	URL string
}

// BrokerConfig vazio em URL = eventos descartados.
type BrokerConfig struct {
	URL   string
	Queue string
}

// Load lê a configuração do ambiente (e opcionalmente de .env / config.env).
// Variáveis de ambiente têm prioridade.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "cadastro-funcionarios"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Timezone: getString(v, "TIMEZONE", "America/Sao_Paulo"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", StoreMemory)),
		},
		Sheets: SheetsConfig{
			CredentialsFile: getString(v, "GOOGLE_CREDENTIALS_FILE", ""),
			CredentialsJSON: getString(v, "GOOGLE_CREDENTIALS_JSON", ""),
			SpreadsheetID:   getString(v, "GOOGLE_SHEET_ID", ""),
			SheetName:       getString(v, "GOOGLE_SHEET_NAME", "Sheet1"),
			Timeout:         time.Duration(getInt(v, "SHEETS_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "cadastro"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			SheetName:   getString(v, "DB_SHEET_NAME", "funcionarios"),
		},
		Admin: AdminConfig{
			User:     getString(v, "ADMIN_USER", ""),
			Password: getString(v, "ADMIN_PASSWORD", ""),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			Expiration: getInt(v, "SESSION_TTL_MINUTES", 480),
			Issuer:     getString(v, "SESSION_ISSUER", "cadastro-funcionarios"),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
		Broker: BrokerConfig{
			URL:   getString(v, "RABBITMQ_URL", ""),
			Queue: getString(v, "RABBITMQ_QUEUE", "funcionarios"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreMemory, StorePostgres:
	case StoreSheets:
		if c.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("config: GOOGLE_SHEET_ID é obrigatório com STORE_DRIVER=sheets")
		}
		if c.Sheets.CredentialsFile == "" && c.Sheets.CredentialsJSON == "" {
			return fmt.Errorf("config: defina GOOGLE_CREDENTIALS_FILE ou GOOGLE_CREDENTIALS_JSON")
		}
	default:
		return fmt.Errorf("config: STORE_DRIVER desconhecido %q", c.Store.Driver)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
