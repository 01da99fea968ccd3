package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	// 数据集可以是本地路径，也可以是 http(s) 地址
	RolesPath     string `mapstructure:"roles_path"`
	RolelistsPath string `mapstructure:"rolelists_path"`
	StaticDir     string `mapstructure:"static_dir"`

	InvestigatorID      int     `mapstructure:"investigator_id"`
	InvestigativeGroups [][]int `mapstructure:"investigative_groups"`
}

const (
	defaultConfigFile = "app_config.json"
	envPrefix         = "LMM"
)

func InitConfig() *AppConfig {
	cfg, err := LoadConfig(defaultConfigFile)
	if err != nil {
		panic(fmt.Errorf("加载配置失败: %w", err))
	}

	return cfg
}

// LoadConfig 读取 JSON 配置文件，LMM_ 前缀的环境变量会覆盖文件中的同名键
// 配置文件不存在时只使用默认值和环境变量
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("roles_path", "./roles.json")
	v.SetDefault("rolelists_path", "./rolelist-explorer/rolelists.json")
	v.SetDefault("static_dir", "./public")
	v.SetDefault("investigator_id", 0)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("json")

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg AppConfig

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return &cfg, nil
}
