package remote

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where entries are stored and who is writing them.
type Config interface {
	// BasePath is the local store directory, used when no API URL is set.
	BasePath() string
	// APIURL selects the hosted journal API backend when non-empty.
	APIURL() string
	// User is the identity every store operation is scoped to. An empty
	// user means nobody is signed in and mutations become no-ops.
	User() string
}

// LoadConfig reads .journali config via viper, honoring the JOURNALI_*
// environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.journali.db")
	viper.SetConfigName(".journali") // .yaml is implicit
	viper.SetEnvPrefix("JOURNALI")
	viper.AutomaticEnv()

	if override := os.Getenv("JOURNALI_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{
		Path: path,
		API:  viper.GetString("api"),
		Who:  viper.GetString("user"),
	}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	API  string `json:"api"`
	Who  string `json:"user"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) APIURL() string { return f.API }

func (f *fileConfig) User() string { return f.Who }
