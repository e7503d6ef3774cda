package configs

import (
	"encoding/json"
	"os"
	"sync"
)

// Config holds the server configuration.
type Config struct {
	Server struct {
		Host string `json:"host"`
		// TCPPort carries the frame protocol directly.
		TCPPort int `json:"tcpPort"`
		// WSPort serves the WebSocket gateway; 0 disables it.
		WSPort   int    `json:"wsPort"`
		LogLevel string `json:"logLevel"`
	} `json:"server"`
}

var (
	once    sync.Once
	config  *Config
	loadErr error
)

// DefaultTCPPort is the port clients try first.
const DefaultTCPPort = 42069

// LoadConfig reads the configuration file once and caches the result. A
// missing file is not an error; the defaults apply.
func LoadConfig(filePath string) (*Config, error) {
	once.Do(func() {
		cfg := &Config{}
		setDefaultValues(cfg)

		data, err := os.ReadFile(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				config = cfg
				return
			}
			loadErr = err
			return
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			loadErr = err
			return
		}
		config = cfg
	})
	return config, loadErr
}

func setDefaultValues(cfg *Config) {
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.TCPPort = DefaultTCPPort
	cfg.Server.WSPort = 0
	cfg.Server.LogLevel = "INFO"
}

// CreateExampleConfigFile writes a config populated with defaults if no file
// exists at the path yet.
func CreateExampleConfigFile(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	cfg := &Config{}
	setDefaultValues(cfg)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
