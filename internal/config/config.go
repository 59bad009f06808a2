package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

var (
	ErrEnvVarNotFound = errors.New("environment variable not found")
	ErrEnvVarEmpty    = errors.New("environment variable is empty")
)

// AllowedOrigin is the only origin browsers are permitted to call the API from.
const AllowedOrigin = "https://brantley-global.com"

const (
	apiPortEnvKey   = "API_PORT"
	apiSecretEnvKey = "API_SECRET"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	logLevelEnvKey  = "LOG_LEVEL"

	txHistoryDBEnvKey   = "DB_TRANSACTIONHISTORY_URL"
	transfersDBEnvKey   = "DB_TRANSFERS_URL"
	vaultDBEnvKey       = "DB_VAULT_URL"
	purchaseDBEnvKey    = "DB_PURCHASE_URL"
	swapDBEnvKey        = "DB_SWAP_URL"
	redemptionsDBEnvKey = "DB_REDEMPTIONS_URL"
)

// TableURLs holds the connection string of every table handle.
type TableURLs struct {
	TransactionHistory string
	Transfers          string
	Vault              string
	Purchase           string
	Swap               string
	Redemptions        string
}

type App struct {
	Port            string
	APISecret       string
	DBConnectionURL string
	TableURLs       TableURLs
	LogLevel        zapcore.Level
}

// NewApp reads the application config from the environment. Variables found in
// envFiles are loaded first without overriding ones already set; missing files
// are skipped.
func NewApp(envFiles ...string) (App, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return App{}, fmt.Errorf("load env file %q: %w", file, err)
		}
	}

	port, err := lookup(apiPortEnvKey)
	if err != nil {
		return App{}, err
	}

	secret, err := lookup(apiSecretEnvKey)
	if err != nil {
		return App{}, err
	}

	dbConn, err := lookup(dbConnEnvKey)
	if err != nil {
		return App{}, err
	}

	level := zapcore.InfoLevel
	if raw, ok := os.LookupEnv(logLevelEnvKey); ok && raw != "" {
		level, err = zapcore.ParseLevel(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", logLevelEnvKey, err)
		}
	}

	return App{
		Port:            port,
		APISecret:       secret,
		DBConnectionURL: dbConn,
		TableURLs: TableURLs{
			TransactionHistory: lookupOr(txHistoryDBEnvKey, dbConn),
			Transfers:          lookupOr(transfersDBEnvKey, dbConn),
			Vault:              lookupOr(vaultDBEnvKey, dbConn),
			Purchase:           lookupOr(purchaseDBEnvKey, dbConn),
			Swap:               lookupOr(swapDBEnvKey, dbConn),
			Redemptions:        lookupOr(redemptionsDBEnvKey, dbConn),
		},
		LogLevel: level,
	}, nil
}

func lookup(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEnvVarNotFound, key)
	}
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvVarEmpty, key)
	}
	return value, nil
}

func lookupOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
