// Package config holds globally available configuration variables, read in
// from a toml file or left at their defaults.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the working directory).
	ConfFile = "./config.toml"

	// LogLevel is the log verbosity. It is not part of conf, so the config
	// file does not set it.
	LogLevel = 2

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Agent agentConfiguration
	Store storeConfiguration
}

// Setup reads the config file, if present, and falls back to the package's
// defaults for anything it doesn't set. Safe to call more than once; only
// the first call has effect.
func Setup() {
	if initialized {
		return
	}

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults:", err)
	}

	initialized = true
}

// String prints out the current configuration settings and values via reflection.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Agent Config:\n")
	dumpFields(&sb, &c.Agent)
	sb.WriteString("\nStore Config:\n")
	dumpFields(&sb, &c.Store)
	return sb.String()
}

func dumpFields(sb *strings.Builder, v any) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		fmt.Fprintf(sb, "%-2d: %-18s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
