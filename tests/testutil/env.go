package testutil

import (
	"io/fs"
	"testing"
)

// MapEnv returns an os.LookupEnv replacement backed by vars.
//
// Example usage:
//
//	src := config.Sources{
//	    LookupEnv: testutil.MapEnv(map[string]string{"HOME": home}),
//	    ReadFile:  os.ReadFile,
//	}
func MapEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// MapFiles returns an os.ReadFile replacement backed by files. Unknown paths
// fail with fs.ErrNotExist.
func MapFiles(files map[string]string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		}
		return []byte(content), nil
	}
}

// FailingFiles returns an os.ReadFile replacement that always fails with err.
func FailingFiles(err error) func(string) ([]byte, error) {
	return func(string) ([]byte, error) {
		return nil, err
	}
}

// SetupTestEnv sets process environment variables for the duration of a
// test. Prefer injecting MapEnv; this is for code paths that read the real
// environment, such as DefaultSources.
func SetupTestEnv(t *testing.T, vars map[string]string) {
	t.Helper()

	for key, value := range vars {
		t.Setenv(key, value)
	}
}
