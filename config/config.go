package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// SysConfig system level configuration
type SysConfig struct {
	Appid          string `yaml:"appid" json:"appid"`
	Location       string `yaml:"location" json:"location"`
	Workdir        string `yaml:"workdir" json:"workdir"`
	Debug          bool   `yaml:"debug" json:"debug"`
	JobsEnable     bool   `yaml:"jobs_enable" json:"jobs_enable"`
	PasswordScheme string `yaml:"password_scheme" json:"password_scheme"`
}

// WebConfig web server configuration
type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	StaticDir string `yaml:"static_dir" json:"static_dir"`
}

// DBConfig store connection configuration
type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
}

// LogConfig logger configuration
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// TrendConfig is a display placeholder for a dashboard stat card.
// The figures are not computed from stored data; the store keeps no
// historical snapshots to derive a real period-over-period delta from.
type TrendConfig struct {
	Change float64 `yaml:"change" json:"change"`
	Trend  string  `yaml:"trend" json:"trend"`
}

// DashboardConfig carries the per-card trend placeholders.
type DashboardConfig struct {
	Revenue      TrendConfig `yaml:"revenue" json:"revenue"`
	Customers    TrendConfig `yaml:"customers" json:"customers"`
	Orders       TrendConfig `yaml:"orders" json:"orders"`
	Satisfaction TrendConfig `yaml:"satisfaction" json:"satisfaction"`
}

type AppConfig struct {
	System    SysConfig       `yaml:"system" json:"system"`
	Web       WebConfig       `yaml:"web" json:"web"`
	Database  DBConfig        `yaml:"database" json:"database"`
	Logger    LogConfig       `yaml:"logger" json:"logger"`
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard"`
}

func (c *AppConfig) GetLogDir() string {
	return path(c.System.Workdir, "logs")
}

func path(dir, sub string) string {
	return dir + string(os.PathSeparator) + sub
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:          "CrmDashboard",
		Location:       "Local",
		Workdir:        "/var/crmdashboard",
		Debug:          true,
		JobsEnable:     true,
		PasswordScheme: "md5",
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      3000,
		StaticDir: "public",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "localhost",
		Port:     5432,
		Name:     "crm_dashboard",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/crmdashboard/crmdashboard.log",
	},
	Dashboard: DashboardConfig{
		Revenue:      TrendConfig{Change: 12.5, Trend: "up"},
		Customers:    TrendConfig{Change: 8.2, Trend: "up"},
		Orders:       TrendConfig{Change: -3.1, Trend: "down"},
		Satisfaction: TrendConfig{Change: 2.4, Trend: "up"},
	},
}

// LoadConfig reads the YAML configuration file and applies environment
// overrides. A missing file falls back to defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" && FileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	}
	setEnvStringValue("CRM_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvStringValue("CRM_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("CRM_WEB_PORT", &cfg.Web.Port)
	setEnvStringValue("CRM_WEB_STATIC_DIR", &cfg.Web.StaticDir)
	setEnvStringValue("CRM_DB_TYPE", &cfg.Database.Type)
	setEnvStringValue("CRM_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("CRM_DB_PORT", &cfg.Database.Port)
	setEnvStringValue("CRM_DB_NAME", &cfg.Database.Name)
	setEnvStringValue("CRM_DB_USER", &cfg.Database.User)
	setEnvStringValue("CRM_DB_PASSWD", &cfg.Database.Passwd)
	setEnvBoolValue("CRM_SYSTEM_DEBUG", &cfg.System.Debug)
	setEnvBoolValue("CRM_SYSTEM_JOBS_ENABLE", &cfg.System.JobsEnable)
	setEnvStringValue("CRM_LOGGER_MODE", &cfg.Logger.Mode)
	return cfg
}

func FileExists(file string) bool {
	info, err := os.Stat(file)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

func setEnvStringValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = cast.ToBool(evalue)
	}
}

// DSN assembles the postgres connection string from the database section.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.Host, c.User, c.Passwd, c.Name, c.Port)
}
