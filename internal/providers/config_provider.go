package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"namecard/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	_ = godotenv.Load()

	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "NCP_LOG_LEVEL")
	viper.BindEnv("database.path", "NCP_DATABASE_PATH")
	viper.BindEnv("recording.timezone", "NCP_TIMEZONE")
	viper.BindEnv("admin.password", "NCP_ADMIN_PASSWORD")
	viper.BindEnv("admin.jwtSecret", "NCP_JWT_SECRET")
	viper.BindEnv("card.filePath", "NCP_CARD_PATH")
	viper.BindEnv("backup.enabled", "NCP_BACKUP_ENABLED")
	viper.BindEnv("cache.enabled", "NCP_CACHE_ENABLED")
	viper.BindEnv("cache.size", "NCP_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "NamecardPlaces"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
