package optio

import "os"

// Filesystem passthrough wrappers. These add nothing beyond the os package
// except defaulted permissions and boolean existence checks; they exist so
// callers of the parser don't reach for a second utility module.

// Exists reports whether path exists (file or directory).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadFile reads the whole file at path.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path with 0644 permissions, truncating any
// existing file.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// AppendFile appends data to path, creating it with 0644 permissions when
// missing.
func AppendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EnsureDir creates path and any missing parents with 0755 permissions.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// RemoveAll removes path and anything under it.
func RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Size returns the length in bytes of the file at path.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
