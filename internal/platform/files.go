package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// DownloadsDirName is the conventional per-user downloads folder
const DownloadsDirName = "Downloads"

// ExtensionPlaceholder is the engine's output template field for the real extension
const ExtensionPlaceholder = "%(ext)s"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// File extensions left behind by interrupted downloads
var (
	SkippedExtensions = []string{".part", ".ytdl"}
)

var ErrFileNotFound = errors.New("file does not exist")

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	foundPath, err := ResolveOutputFile(filePath)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(foundPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openFileInFinderMacOS(absPath)
	case OSWindows:
		return openFileInExplorerWindows(absPath)
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func openFileInFinderMacOS(filePath string) error {
	return exec.Command(OpenCommand, MacOSSelectFlag, filePath).Run()
}

func openFileInExplorerWindows(filePath string) error {
	return exec.Command(ExplorerCommand, WindowsSelectParam, filePath).Run()
}

// openFileInManagerLinux opens the directory containing the file.
// Selection is not standardized across Linux file managers.
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	foundPath, err := ResolveOutputFile(filePath)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(foundPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DownloadsDirName), nil
}

// RemoveEmptyFile deletes the file at path if it exists and is empty.
// Save dialogs create the chosen file; the engine writes next to it under a
// different name, so the placeholder would otherwise be left behind.
func RemoveEmptyFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() || info.Size() > 0 {
		return nil
	}
	return os.Remove(path)
}

// ResolveOutputFile returns the file a download produced. A path still
// carrying the extension placeholder is matched against the files that
// share its prefix, newest first; partial downloads are skipped.
func ResolveOutputFile(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("%w: path is empty", ErrFileNotFound)
	}

	if !strings.Contains(filePath, ExtensionPlaceholder) {
		if _, err := os.Stat(filePath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
		}
		return filePath, nil
	}

	dir := filepath.Dir(filePath)
	prefix := strings.SplitN(filepath.Base(filePath), ExtensionPlaceholder, 2)[0]

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFileNotFound, filePath, err)
	}

	var (
		best     string
		bestTime time.Time
	)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || isPartialDownload(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestTime) {
			best = filepath.Join(dir, name)
			bestTime = info.ModTime()
		}
	}

	if best == "" {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	return best, nil
}

func isPartialDownload(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, skipped := range SkippedExtensions {
		if ext == skipped {
			return true
		}
	}
	return false
}
