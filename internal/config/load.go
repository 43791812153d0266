package config

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// Load compiles a dashboard configuration from a directory of CUE files.
//
// All .cue files in the directory are loaded as a single CUE instance
// and the configuration is read from the "dashboard" field, so a
// deployment can split rule sets and sections across files and let CUE
// unification merge them.
func Load(dir string) (*Dashboard, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &ConfigError{Field: "load", Message: fmt.Sprintf("config directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &ConfigError{Field: "load", Message: fmt.Sprintf("error accessing config directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &ConfigError{Field: "load", Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, &ConfigError{Field: "load", Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &ConfigError{Field: "load", Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, &ConfigError{Field: "load", Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &ConfigError{Field: "load", Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &ConfigError{Field: "load", Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	dashVal := value.LookupPath(cue.ParsePath("dashboard"))
	if !dashVal.Exists() {
		return nil, &ConfigError{Field: "dashboard", Message: "no dashboard configuration found", Pos: value.Pos()}
	}
	return Compile(dashVal)
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
