package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/cpm-dashboard-go/internal/domain/repository"
	"github.com/diillson/cpm-dashboard-go/internal/shared/types"
	"github.com/diillson/cpm-dashboard-go/pkg/log"
)

const (
	// EnvPrefix is the prefix of every environment override (CPM_PERIOD, CPM_CURRENCY, ...).
	EnvPrefix = "CPM"
	// DefaultEnvFile is loaded before reading the environment when it exists.
	DefaultEnvFile = ".env"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	envFile  string
	validate *validator.Validate
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
// envFile vazio desativa a leitura do arquivo .env.
func NewConfigRepository(envFile string) repository.ConfigRepository {
	return &ConfigRepositoryImpl{
		envFile:  envFile,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	if err := r.validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	log.L.WithFields(log.Fields{"path": filePath, "format": fileExtension}).Debug("config file loaded")
	return &config, nil
}

// LoadEnv lê as variáveis CPM_*, carregando antes o arquivo .env se existir.
// Variáveis já definidas no ambiente têm prioridade sobre o arquivo.
func (r *ConfigRepositoryImpl) LoadEnv() (*types.EnvOverrides, error) {
	if r.envFile != "" {
		if err := godotenv.Load(r.envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("error loading %s: %w", r.envFile, err)
			}
		} else {
			log.L.WithField("path", r.envFile).Debug("env file loaded")
		}
	}

	var env types.EnvOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	return &env, nil
}
