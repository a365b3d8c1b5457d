package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppDirName is the per-user config directory name.
const AppDirName = "wordcheck"

// PathResolver finds config and input files relative to the user's config
// dir, the working directory and the executable.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver determines the executable location and config directory.
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// configDirFor returns the platform config directory for wordcheck.
func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, ".config", AppDirName)
	}
}

// ConfigDir returns the preferred config directory.
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// GetConfigPath returns a writable location for filename, falling back to
// ~/.wordcheck, the temp dir and finally the executable dir.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	candidates := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, "."+AppDirName),
		filepath.Join(os.TempDir(), AppDirName),
		pr.executableDir,
	}
	for i, dir := range candidates {
		if CheckDirStatus(dir).Writable {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ResolveInput locates a user supplied file. Absolute paths and paths that
// exist relative to the working directory are returned as is; otherwise the
// config dir and the executable dir are searched. When nothing matches the
// original path is returned so the caller reports the real error.
func (pr *PathResolver) ResolveInput(path string) string {
	if path == "" || filepath.IsAbs(path) || FileExists(path) {
		return path
	}
	for _, dir := range []string{pr.configDir, pr.executableDir} {
		candidate := filepath.Join(dir, path)
		if FileExists(candidate) {
			log.Debugf("Resolved %s to %s", path, candidate)
			return candidate
		}
	}
	return path
}
