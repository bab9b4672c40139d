package config

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
	// Secret signs the session cookie store.
	Secret string `yaml:"secret" json:"secret"`
	// DisplayLimit caps the record count served to the public marketing
	// sections (products, testimonials, earnings cards).
	DisplayLimit int `yaml:"display_limit" json:"display_limit"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type SmtpConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
	NotifyTo string `yaml:"notify_to" json:"notify_to"`
}

type NewsConfig struct {
	ApiUrl string `yaml:"api_url" json:"api_url"`
	// Interval is the feed refresh period in seconds.
	Interval int `yaml:"interval" json:"interval"`
	// Limit caps the number of cached feed items.
	Limit int `yaml:"limit" json:"limit"`
}

type AppConfig struct {
	System   SysConfig  `yaml:"system" json:"system"`
	Web      WebConfig  `yaml:"web" json:"web"`
	Database DBConfig   `yaml:"database" json:"database"`
	Logger   LogConfig  `yaml:"logger" json:"logger"`
	Smtp     SmtpConfig `yaml:"smtp" json:"smtp"`
	News     NewsConfig `yaml:"news" json:"news"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(path.Join(c.System.Workdir, "logs"), 0o755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "data"), 0o755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "ChainRent",
		Location: "Asia/Singapore",
		Workdir:  "/var/chainrent",
		Debug:    true,
	},
	Web: WebConfig{
		Host:         "0.0.0.0",
		Port:         1816,
		Secret:       "9b6de5cc-0731-1203-xxtx-0f568ac9da37",
		DisplayLimit: 6,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "chainrent_v1",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/chainrent/chainrent.log",
	},
	Smtp: SmtpConfig{
		Enabled: false,
		Port:    587,
	},
	News: NewsConfig{
		ApiUrl:   "https://min-api.cryptocompare.com/data/v2/news/?lang=EN",
		Interval: 300,
		Limit:    20,
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads the YAML configuration and applies environment overrides.
// A missing file yields the built-in defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	if cfile != "" && FileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	} else {
		cfg = DefaultAppConfig
	}

	setEnvValue("CHAINRENT_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("CHAINRENT_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvBoolValue("CHAINRENT_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("CHAINRENT_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("CHAINRENT_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("CHAINRENT_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvIntValue("CHAINRENT_WEB_DISPLAY_LIMIT", func(v int) { cfg.Web.DisplayLimit = v })

	setEnvValue("CHAINRENT_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("CHAINRENT_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("CHAINRENT_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("CHAINRENT_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("CHAINRENT_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("CHAINRENT_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvBoolValue("CHAINRENT_SMTP_ENABLED", func(v bool) { cfg.Smtp.Enabled = v })
	setEnvValue("CHAINRENT_SMTP_HOST", func(v string) { cfg.Smtp.Host = v })
	setEnvIntValue("CHAINRENT_SMTP_PORT", func(v int) { cfg.Smtp.Port = v })
	setEnvValue("CHAINRENT_SMTP_USERNAME", func(v string) { cfg.Smtp.Username = v })
	setEnvValue("CHAINRENT_SMTP_PASSWORD", func(v string) { cfg.Smtp.Password = v })
	setEnvValue("CHAINRENT_SMTP_FROM", func(v string) { cfg.Smtp.From = v })
	setEnvValue("CHAINRENT_SMTP_NOTIFY_TO", func(v string) { cfg.Smtp.NotifyTo = v })

	setEnvValue("CHAINRENT_NEWS_API_URL", func(v string) { cfg.News.ApiUrl = v })
	setEnvIntValue("CHAINRENT_NEWS_INTERVAL", func(v int) { cfg.News.Interval = v })

	cfg.initDirs()
	return cfg
}

func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}

// Dsn assembles the database connection string.
func (c DBConfig) Dsn() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.Host, c.Port, c.User, c.Passwd, c.Name)
}
