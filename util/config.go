package util

import (
	"os"

	"github.com/go-yaml/yaml"
)

// Config is the agent base configuration
type Config struct {
	Server Server `yaml:"server"`
	Pod    Pod    `yaml:"pod"`
}

type Server struct {
	Addr          string `yaml:"addr"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	EnableTrace   bool   `yaml:"enableTrace"`
}

// Pod describes the user's pod this agent acts on behalf of.
type Pod struct {
	WebID            string `yaml:"webid"`
	SessionKey       string `yaml:"sessionKey"`
	HospexContainer  string `yaml:"hospexContainer"`
	PrivateTypeIndex string `yaml:"privateTypeIndex"`
	Inbox            string `yaml:"inbox"`
}

// Load loads agent config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		return err
	}

	return nil
}
