package config

import (
	"math"
	"net"
	"net/url"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings shared by the generate and benchmark commands.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - DataFile: Path of the JSON dataset file.
// - Store: The kind of dataset store (file, postgres).
// - Seed: Generator seed; nil means an unseeded source.
// - EarthRadius: Sphere radius in kilometers used for distances.
// - MetricsFile: Path for the Prometheus textfile export; empty disables it.
// - Database: Configuration settings for the PostgreSQL store.
type Config struct {
	Env         string         // Env is the current environment: local, development, production.
	DataFile    string         // DataFile is the dataset path shared by both commands.
	Store       string         // Store selects where the dataset lives.
	Seed        *uint64        // Seed makes generation reproducible when set.
	EarthRadius float64        // EarthRadius is the sphere radius in kilometers.
	MetricsFile string         // MetricsFile receives metrics after each run.
	Database    PostgresConfig // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// DSN builds a pgx connection string from the settings.
func (pc PostgresConfig) DSN() string {
	if pc.Host == "" {
		return ""
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pc.User, pc.Password),
		Host:     net.JoinHostPort(pc.Host, pc.Port),
		Path:     "/" + pc.Name,
		RawQuery: "sslmode=disable",
	}

	return dsn.String()
}

// MustLoad reads the configuration from the environment (and an optional .env file)
// and returns a Config struct. It panics on values that cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("HAVERSINE")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("data_file", "pairs.json")
	v.SetDefault("store", "file")
	v.SetDefault("earth_radius", "6371")
	v.SetDefault("db.port", "5432")

	for key, env := range map[string]string{
		"db.host":     "DB_HOST",
		"db.port":     "DB_PORT",
		"db.user":     "DB_USERNAME",
		"db.password": "DB_PASSWORD",
		"db.name":     "DB_NAME",
	} {
		_ = v.BindEnv(key, env)
	}

	radius, err := strconv.ParseFloat(v.GetString("earth_radius"), 64)
	if err != nil || radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		panic("failed to parse earth radius from configuration, must be a positive number")
	}

	var seed *uint64
	if raw := v.GetString("seed"); raw != "" {
		parsed, errSeed := strconv.ParseUint(raw, 10, 64)
		if errSeed != nil {
			panic("failed to parse seed from configuration, must be an unsigned integer")
		}
		seed = &parsed
	}

	return &Config{
		Env:         v.GetString("env"),
		DataFile:    v.GetString("data_file"),
		Store:       v.GetString("store"),
		Seed:        seed,
		EarthRadius: radius,
		MetricsFile: v.GetString("metrics_file"),
		Database: PostgresConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
		},
	}
}
