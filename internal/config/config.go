package config

import (
	"os"
	"path/filepath"

	dserrors "github.com/systmms/summon-keepass/internal/errors"
	"github.com/systmms/summon-keepass/internal/logging"
	"github.com/systmms/summon-keepass/internal/secure"
	"gopkg.in/ini.v1"
)

const (
	// EnvStorePath names the environment variable holding the database path.
	EnvStorePath = "SUMMON_KEEPASS_DB_PATH"
	// EnvStorePass names the environment variable holding the passphrase.
	EnvStorePass = "SUMMON_KEEPASS_DB_PASS"

	// FileName is the config file looked up in the user's home directory.
	FileName = ".summon-keepass.ini"
	// Section is the INI section carrying the store settings.
	Section = "keepass_db"
	// KeyPath and KeyPass are the keys inside Section.
	KeyPath = "path"
	KeyPass = "pass"

	homeEnv = "HOME"
)

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// ReadFileFunc has the signature of os.ReadFile.
type ReadFileFunc func(path string) ([]byte, error)

// Sources injects the two places configuration is read from.
type Sources struct {
	LookupEnv LookupEnvFunc
	ReadFile  ReadFileFunc
	Logger    *logging.Logger
}

// DefaultSources reads the real process environment and file system.
func DefaultSources(logger *logging.Logger) Sources {
	return Sources{
		LookupEnv: os.LookupEnv,
		ReadFile:  os.ReadFile,
		Logger:    logger,
	}
}

// Config holds the resolved store settings. The passphrase stays sealed
// until the store is opened.
type Config struct {
	StorePath  string
	Passphrase *secure.SecureBuffer
}

// Destroy wipes the sealed passphrase.
func (c *Config) Destroy() {
	if c != nil && c.Passphrase != nil {
		c.Passphrase.Destroy()
	}
}

// Resolve merges the environment and file sources into a Config.
//
// Each field is resolved on its own: a value from the environment wins, and
// the file fills in whatever the environment lacks. The file is best-effort;
// a missing home directory, file, section or key contributes nothing. Both
// fields must end up non-empty, otherwise a configuration error listing
// what each source provided is returned.
func Resolve(src Sources) (*Config, error) {
	logger := src.Logger
	if logger == nil {
		logger = logging.NewWithWriter(nil, false, true)
	}

	status := SourceStatus{
		EnvPath: lookup(src.LookupEnv, EnvStorePath),
		EnvPass: lookup(src.LookupEnv, EnvStorePass),
	}
	status.FilePath, status.FilePass = readFile(src, logger)

	path := status.EnvPath.Or(status.FilePath)
	pass := status.EnvPass.Or(status.FilePass)

	logger.Debug("Store path from %s, passphrase from %s",
		status.pathOrigin(), status.passOrigin())

	if path == "" || pass == "" {
		return nil, dserrors.Configuration(status.Diagnostic())
	}

	return &Config{
		StorePath:  path,
		Passphrase: secure.NewSecureString(pass),
	}, nil
}

func lookup(fn LookupEnvFunc, key string) Value {
	if fn == nil {
		return Value{}
	}
	v, ok := fn(key)
	if !ok || v == "" {
		return Value{}
	}
	return Value{value: v, found: true}
}

// FilePath returns the config file location for the given environment, or
// false when no home directory is known.
func FilePath(lookupEnv LookupEnvFunc) (string, bool) {
	home := lookup(lookupEnv, homeEnv)
	if !home.Found() {
		return "", false
	}
	return filepath.Join(home.value, FileName), true
}

func readFile(src Sources, logger *logging.Logger) (path, pass Value) {
	location, ok := FilePath(src.LookupEnv)
	if !ok {
		logger.Debug("No home directory, skipping %s", FileName)
		return Value{}, Value{}
	}
	if src.ReadFile == nil {
		return Value{}, Value{}
	}

	data, err := src.ReadFile(location)
	if err != nil {
		logger.Debug("Config file %s not used: %v", location, err)
		return Value{}, Value{}
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		logger.Debug("Config file %s is not valid INI: %v", location, err)
		return Value{}, Value{}
	}

	section, err := file.GetSection(Section)
	if err != nil {
		logger.Debug("Config file %s has no [%s] section", location, Section)
		return Value{}, Value{}
	}

	return sectionValue(section, KeyPath), sectionValue(section, KeyPass)
}

func sectionValue(section *ini.Section, key string) Value {
	if !section.HasKey(key) {
		return Value{}
	}
	v := section.Key(key).String()
	if v == "" {
		return Value{}
	}
	return Value{value: v, found: true}
}
