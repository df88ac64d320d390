package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Значения -lo и -o, означающие стандартные потоки.
const (
	StdoutLog    = "stdout"
	StderrLog    = "stderr"
	StdoutOutput = "-"
)

type Config struct {
	BaseURL         string
	VirtualServerID int
	APIKey          string
	Timeout         time.Duration
	Output          string
	Pretty          bool
	LogLevel        string
	LogOutput       string
	Serve           bool
	RunAddress      string
	JWTSecretKey    string
	IssueToken      string
	ICMPCheck       bool
	CORSOrigins     string
}

// InitConfig Инициализация структуры, содержащей конфигурацию, полученную из флагов или
// переменных окружения.
func InitConfig() (*Config, error) {
	return Parse(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

// Parse Разбирает флаги из args, затем переопределяет их значениями переменных окружения.
// lookupEnv подменяется в тестах.
func Parse(fs *flag.FlagSet, args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	config := &Config{}

	fs.StringVar(&config.BaseURL, "u", "http://127.0.0.1:10080", "WebQuery base URL (example: `https://ts.example.org:10443`)")
	fs.IntVar(&config.VirtualServerID, "s", 1, "Virtual server id")
	fs.StringVar(&config.APIKey, "k", "", "WebQuery API key")
	fs.DurationVar(&config.Timeout, "t", 10*time.Second, "HTTP timeout for a single WebQuery request")
	fs.StringVar(&config.Output, "o", StdoutOutput, "Output file for the topology JSON (`-` for stdout)")
	fs.BoolVar(&config.Pretty, "pretty", false, "Indent the topology JSON")
	fs.StringVar(&config.LogLevel, "ll", "Info", "Log level for logging (example: Debug, Info, Warn, Error)")
	fs.StringVar(&config.LogOutput, "lo", StderrLog, "Log output: stderr or path to a log file (stdout only with -serve or -o <file>)")
	fs.BoolVar(&config.Serve, "serve", false, "Run the read-only HTTP API instead of a single export")
	fs.StringVar(&config.RunAddress, "a", "127.0.0.1:8080", "HTTP server address and port (serve mode)")
	fs.StringVar(&config.JWTSecretKey, "j", "", "JWT secret key protecting the HTTP API (empty disables auth)")
	fs.StringVar(&config.IssueToken, "issue-token", "", "Print a JWT for the given subject and exit")
	fs.BoolVar(&config.ICMPCheck, "icmp", false, "Also ping the WebQuery host in /health")
	fs.StringVar(&config.CORSOrigins, "cors", "", "Comma separated origins allowed to read the HTTP API (`*` for any)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if value, ok := lookupEnv("TS3_BASE_URL"); ok {
		config.BaseURL = value
	}

	if value, ok := lookupEnv("TS3_VIRTUAL_SERVER_ID"); ok {
		id, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("некорректный TS3_VIRTUAL_SERVER_ID: %w", err)
		}
		config.VirtualServerID = id
	}

	if value, ok := lookupEnv("TS3_API_KEY"); ok {
		config.APIKey = value
	}

	if value, ok := lookupEnv("TS3_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("некорректный TS3_TIMEOUT: %w", err)
		}
		config.Timeout = timeout
	}

	if value, ok := lookupEnv("OUTPUT"); ok {
		config.Output = value
	}

	if value, ok := lookupEnv("PRETTY"); ok {
		config.Pretty = parseBool(value)
	}

	if value, ok := lookupEnv("LOG_LEVEL"); ok {
		config.LogLevel = value
	}

	if value, ok := lookupEnv("LOG_OUTPUT"); ok {
		config.LogOutput = value
	}

	if value, ok := lookupEnv("SERVE"); ok {
		config.Serve = parseBool(value)
	}

	if value, ok := lookupEnv("RUN_ADDRESS"); ok {
		config.RunAddress = value
	}

	if value, ok := lookupEnv("JWT_SECRET_KEY"); ok {
		config.JWTSecretKey = value
	}

	if value, ok := lookupEnv("ICMP_CHECK"); ok {
		config.ICMPCheck = parseBool(value)
	}

	if value, ok := lookupEnv("CORS_ORIGINS"); ok {
		config.CORSOrigins = value
	}

	return config, nil
}

// Validate Проверяет параметры, без которых нельзя обратиться к WebQuery.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("не указан ключ WebQuery API (-k или TS3_API_KEY)")
	}

	if c.VirtualServerID <= 0 {
		return fmt.Errorf("id виртуального сервера должен быть положительным числом, получено %d", c.VirtualServerID)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("некорректный адрес WebQuery: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("адрес WebQuery должен начинаться с http:// или https://, получено `%s`", c.BaseURL)
	}

	if u.Host == "" {
		return fmt.Errorf("в адресе WebQuery отсутствует хост: `%s`", c.BaseURL)
	}

	if c.Timeout < 0 {
		return errors.New("таймаут не может быть отрицательным")
	}

	return nil
}

// LogTarget Куда писать логи. Пока stdout занят документом или токеном, логи уходят в stderr.
func (c *Config) LogTarget() string {
	if !strings.EqualFold(strings.TrimSpace(c.LogOutput), StdoutLog) {
		return c.LogOutput
	}

	if c.IssueToken != "" || (!c.Serve && c.Output == StdoutOutput) {
		return StderrLog
	}

	return c.LogOutput
}

// AllowedOrigins Список origins из CORSOrigins без пустых элементов.
func (c *Config) AllowedOrigins() []string {
	var origins []string

	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
