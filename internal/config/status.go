package config

import (
	"fmt"
	"strings"
)

// Value is an optional configuration value from one source.
type Value struct {
	value string
	found bool
}

// Found reports whether the source provided a non-empty value.
func (v Value) Found() bool { return v.found }

// Or returns v's value if found, otherwise fallback's.
func (v Value) Or(fallback Value) string {
	if v.found {
		return v.value
	}
	return fallback.value
}

// SourceStatus records which source provided which setting. It is only used
// to explain a failed resolution.
type SourceStatus struct {
	EnvPath  Value
	EnvPass  Value
	FilePath Value
	FilePass Value
}

func (s SourceStatus) pathOrigin() string {
	return origin(s.EnvPath, s.FilePath)
}

func (s SourceStatus) passOrigin() string {
	return origin(s.EnvPass, s.FilePass)
}

func origin(env, file Value) string {
	switch {
	case env.found:
		return "environment"
	case file.found:
		return "config file"
	default:
		return "nowhere"
	}
}

func mark(v Value) string {
	if v.found {
		return "✓ found"
	}
	return "✗ not found"
}

// Diagnostic renders the checklist shown when resolution fails.
func (s SourceStatus) Diagnostic() string {
	var b strings.Builder

	b.WriteString("Configuration error: KeePass database path and password are required.\n")
	b.WriteString("\n")
	b.WriteString("Environment variables:\n")
	fmt.Fprintf(&b, "  %s: %s\n", EnvStorePath, mark(s.EnvPath))
	fmt.Fprintf(&b, "  %s: %s\n", EnvStorePass, mark(s.EnvPass))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Config file (~/%s, section [%s]):\n", FileName, Section)
	fmt.Fprintf(&b, "  %s: %s\n", KeyPath, mark(s.FilePath))
	fmt.Fprintf(&b, "  %s: %s\n", KeyPass, mark(s.FilePass))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Set %s and %s, or create ~/%s with:\n", EnvStorePath, EnvStorePass, FileName)
	fmt.Fprintf(&b, "  [%s]\n", Section)
	fmt.Fprintf(&b, "  %s=/path/to/database.kdbx\n", KeyPath)
	fmt.Fprintf(&b, "  %s=your-password", KeyPass)

	return b.String()
}
