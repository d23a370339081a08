package config

import "errors"

var (
	// ErrConfigFileNotFound is returned when config file is not found
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrUnsupportedFormat is returned for a config file extension other than .yaml, .yml or .json
	ErrUnsupportedFormat = errors.New("unsupported config file format")

	// ErrInputPathsRequired is returned when no input path is configured
	ErrInputPathsRequired = errors.New("at least one input path is required")

	// ErrEmptyInputPath is returned for a blank entry in input_paths
	ErrEmptyInputPath = errors.New("input path must not be empty")

	// ErrOutputPathRequired is returned when output path is not provided
	ErrOutputPathRequired = errors.New("output path is required")

	// ErrIncompleteImportAlias is returned when only one of import_alias.source and import_alias.alias is set
	ErrIncompleteImportAlias = errors.New("import_alias needs both source and alias")

	// ErrInvalidConcurrency is returned for a negative concurrency
	ErrInvalidConcurrency = errors.New("concurrency must not be negative")
)
