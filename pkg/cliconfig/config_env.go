package cliconfig

import (
	"os"
	"strconv"
)

const envPrefix = "RVDBACC_"

// ApplyEnvConfig reads the RVDBACC_* variables. They beat the config
// file, but lose to flags in changed. A boolean that will not parse is
// ignored.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)
	s.setString("input", os.Getenv(envPrefix+"INPUT"), &cfg.InFname)
	s.setString("output", os.Getenv(envPrefix+"OUTPUT"), &cfg.OutFname)
	s.setString("log-level", os.Getenv(envPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	if v, ok := envBool(envPrefix + "STRICT"); ok {
		s.setBool("strict", &v, &cfg.Strict)
	}
}

func envBool(key string) (bool, bool) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return b, true
}
