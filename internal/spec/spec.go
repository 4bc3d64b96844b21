// Package spec declares what the pipeline runs: the fixed binding of input
// files to transformer chains. The bindings are compile-time constants;
// which chain cleans which dataset is part of the program, not of its
// configuration.
package spec

import "fmt"

// Header is the version gate at the top of the app config file.
type Header struct {
	SchemaVersion string `yaml:"schema_version"`
}

const SupportedSchema = "v1"

func (h Header) Validate() error {
	if h.SchemaVersion != "" && h.SchemaVersion != SupportedSchema {
		return fmt.Errorf("config schema_version %q not supported (want %q)", h.SchemaVersion, SupportedSchema)
	}
	return nil
}

// Chain kinds understood by the pipeline compiler.
type ChainKind string

const (
	ChainPotera    ChainKind = "potera"
	ChainSlagalica ChainKind = "slagalica"
)

// Job binds one CSV file to the chain that cleans it.
type Job struct {
	File  string
	Chain ChainKind
}

// Jobs is the run plan, in execution order.
var Jobs = []Job{
	{File: "potera.csv", Chain: ChainPotera},
	{File: "slagalica.csv", Chain: ChainSlagalica},
}

// Column names the chains operate on. Extra columns in the input pass
// through to the output untouched.
const (
	ColumnQuestion = "question"
	ColumnAnswer   = "answer"
)
