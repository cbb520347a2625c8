// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ecconfig

package ecconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const defaultConfigFileName = ".editorconfig"

// ResolverOptions configures Resolver behavior.
type ResolverOptions struct {
	// ConfigFileName is the config file looked up in each directory of the chain.
	// Empty value defaults to ".editorconfig".
	ConfigFileName string `json:"config_file_name,omitempty" yaml:"config_file_name,omitempty"`
	// Files serves config file contents. Nil uses DefaultFileCache.
	Files *FileCache `json:"-" yaml:"-"`
	// Globs compiles section patterns. Nil uses DefaultGlobCache.
	Globs *GlobCache `json:"-" yaml:"-"`
	// ParseOptions is passed to the parser for every config file.
	ParseOptions ParseOptions `json:"parse_options" yaml:"parse_options"`
}

// Resolver computes effective properties of a file from the config files in
// its directory and every parent directory.
type Resolver struct {
	// files loads config file contents.
	files *FileCache
	// globs compiles section patterns.
	globs *GlobCache
	// configFileName is per-directory config file name.
	configFileName string
	// parseOptions are shared by all parse runs.
	parseOptions ParseOptions
}

// configFile is one parsed config file of the lookup chain.
type configFile struct {
	// path is absolute config file path.
	path string
	// dir is the directory section patterns are relative to.
	dir string
	// sections in file order.
	sections []configSection
	// root stops the lookup at this directory.
	root bool
}

// configSection is one "[pattern]" block.
type configSection struct {
	pattern string
	props   []Property
}

// NewResolver creates a resolver.
func NewResolver(opts ResolverOptions) (*Resolver, error) {
	name, err := cleanConfigFileName(opts.ConfigFileName)
	if err != nil {
		return nil, err
	}

	files := opts.Files
	if files == nil {
		files = DefaultFileCache()
	}

	globs := opts.Globs
	if globs == nil {
		globs = DefaultGlobCache()
	}

	return &Resolver{
		files:          files,
		globs:          globs,
		configFileName: name,
		parseOptions:   opts.ParseOptions,
	}, nil
}

// Properties returns the properties applying to target.
//
// Config files are applied from the outermost directory to the innermost one,
// and sections in file order; a later value for the same name wins. Lookup
// stops at the first file declaring "root = true" in its preamble.
// Property names are lower-cased.
func (r *Resolver) Properties(target string) ([]Property, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("abs %s: %w", target, err)
	}

	chain, err := r.configChain(filepath.Dir(abs))
	if err != nil {
		return nil, err
	}

	var sets [][]Property
	for i := len(chain) - 1; i >= 0; i-- {
		cf := chain[i]

		candidate, ok := RelativeCandidate(cf.dir, abs)
		if !ok {
			continue
		}

		for _, sec := range cf.sections {
			matched, err := r.globs.Match(sectionPattern(sec.pattern), "/"+candidate)
			if err != nil {
				return nil, fmt.Errorf("%s: section [%s]: %w", cf.path, sec.pattern, err)
			}

			if matched {
				sets = append(sets, sec.props)
			}
		}
	}

	return MergeProperties(sets...), nil
}

// ConfigFiles returns config files consulted for target, innermost first.
func (r *Resolver) ConfigFiles(target string) ([]string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("abs %s: %w", target, err)
	}

	chain, err := r.configChain(filepath.Dir(abs))
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(chain))
	for _, cf := range chain {
		paths = append(paths, cf.path)
	}

	return paths, nil
}

// configChain loads config files from dir up to the filesystem root or the
// first root file, innermost first.
func (r *Resolver) configChain(dir string) ([]*configFile, error) {
	var chain []*configFile
	for {
		cf, err := r.loadConfig(dir)
		if err != nil {
			return nil, err
		}

		if cf != nil {
			chain = append(chain, cf)
			if cf.root {
				break
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return chain, nil
}

// loadConfig parses the config file of dir. It returns nil when the file does not exist.
func (r *Resolver) loadConfig(dir string) (*configFile, error) {
	cf := &configFile{
		path: filepath.Join(dir, r.configFileName),
		dir:  dir,
	}

	err := r.files.ParseFile(cf.path, cf.collect, r.parseOptions)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", cf.path, err)
	}

	return cf, nil
}

// collect is the parse handler building cf.
func (cf *configFile) collect(section string, name string, value string) bool {
	name = strings.ToLower(name)

	if section == "" {
		if name == "root" {
			cf.root = strings.EqualFold(value, "true")
		}
		return true
	}

	if n := len(cf.sections); n == 0 || cf.sections[n-1].pattern != section {
		cf.sections = append(cf.sections, configSection{pattern: section})
	}

	last := &cf.sections[len(cf.sections)-1]
	last.props = append(last.props, Property{Name: name, Value: value})

	return true
}

// sectionPattern anchors a section pattern to its config directory.
//
// Patterns without "/" match in any subdirectory; patterns with "/" are
// relative to the config directory.
func sectionPattern(section string) string {
	if strings.HasPrefix(section, "/") {
		return section
	}

	if strings.Contains(section, "/") {
		return "/" + section
	}

	return "/**/" + section
}

// cleanConfigFileName validates and normalizes resolver config file name.
func cleanConfigFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = defaultConfigFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidConfigFileName
	}

	name = filepath.ToSlash(name)
	if strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidConfigFileName
	}

	return name, nil
}
