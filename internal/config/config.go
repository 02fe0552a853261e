package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env-default:"prod"`
	HTTPServer  `yaml:"http_server"`
	FrontendDir string `yaml:"frontend_dir" env-default:"./frontend-dist"`

	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password" env-default:""`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`
	ParseTime  bool   `yaml:"parse_time" env-default:"true"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`

	Calc Calc `yaml:"calc"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout"  env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout"  env-default:"60s"`
}

type Calc struct {
	// StrictValidation は不正な時刻文字列・負の数量をエラーにする。
	// falseなら画面側と同じく黙って0に落とす。
	StrictValidation bool `yaml:"strict_validation" env-default:"false"`
	// OvernightWrap は日跨ぎ（終了<開始）のタイムスロットに24時間を足す
	OvernightWrap bool `yaml:"overnight_wrap" env-default:"false"`
}

func MustConfig() *Config {
	var cfg Config
	path := "./config/local.yaml"

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
