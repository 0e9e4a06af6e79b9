package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/renamer/internal/model"
)

// EnvConfigPath names the environment variable that points at a
// configuration file. It is consulted after the --config flag.
const EnvConfigPath = "RENAMER_CONFIG"

// AppDirName is the directory under os.UserConfigDir() that may hold a
// user-wide config.json.
const AppDirName = "renamer"

// localCandidates are looked up relative to the working directory, in order.
// config.json comes first to stay compatible with existing setups that
// keep the file next to the binary's working directory.
var localCandidates = []string{
	"config.json",
	"renamer.json",
	"renamer.yaml",
	"renamer.yml",
}

// Load reads a configuration file and parses it according to its
// extension: .yaml/.yml as YAML, anything else as JSONC.
//
// Returns a CLIError with ExitConfigError if the file does not exist or
// cannot be parsed.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("configuration file not found: %s", path),
				err,
			)
		}
		return nil, model.WrapCLIError(model.ExitConfigError, "failed to read configuration file", err)
	}

	cfg, err := Parse(data, isYAML(path))
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("failed to parse configuration file %s", path),
			err,
		)
	}
	return cfg, nil
}

// Parse decodes configuration bytes. When asYAML is false the data is
// treated as JSONC: comments and trailing commas are stripped first.
func Parse(data []byte, asYAML bool) (*Configuration, error) {
	var cfg Configuration

	if asYAML {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else {
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SearchPaths returns the candidate configuration paths in lookup order.
// Empty arguments are skipped, so callers can pass "" for a location that
// is unavailable (e.g. no user config directory).
func SearchPaths(explicit, env, workDir, userConfigDir string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	if env != "" {
		paths = append(paths, env)
	}
	if workDir != "" {
		for _, name := range localCandidates {
			paths = append(paths, filepath.Join(workDir, name))
		}
	}
	if userConfigDir != "" {
		paths = append(paths, filepath.Join(userConfigDir, AppDirName, "config.json"))
	}
	return paths
}

// Resolve loads the configuration the CLI should use and returns it with
// the path it came from.
//
// An explicit path (flag or environment variable) must exist. Otherwise the
// first existing file among the standard locations is used, and Default()
// is returned with an empty path when none exists.
func Resolve(explicit string) (*Configuration, string, error) {
	env := os.Getenv(EnvConfigPath)

	// A named file that is missing is an error rather than a silent
	// fallback to defaults.
	for _, named := range []string{explicit, env} {
		if named == "" {
			continue
		}
		cfg, err := Load(named)
		if err != nil {
			return nil, "", err
		}
		return cfg, named, nil
	}

	workDir, _ := os.Getwd()
	userDir, _ := os.UserConfigDir()

	for _, candidate := range SearchPaths("", "", workDir, userDir) {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		cfg, err := Load(candidate)
		if err != nil {
			return nil, "", err
		}
		return cfg, candidate, nil
	}

	cfg := Default()
	return &cfg, "", nil
}

// Save writes cfg to path as indented JSON, or as YAML when the path ends
// in .yaml/.yml. It refuses to replace an existing file unless force is set.
func Save(path string, cfg Configuration, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return model.NewCLIError(model.ExitConfigError,
				fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path))
		}
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return model.WrapCLIError(model.ExitConfigError, "failed to create configuration directory", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.WrapCLIError(model.ExitConfigError, "failed to write configuration file", err)
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
