package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/hashicorp/go-multierror"
)

// FFmpegName is the base name of the ffmpeg executable
const FFmpegName = "ffmpeg"

var ErrFFmpegNotFound = errors.New("ffmpeg not found")

// FFmpegExecutable returns the platform-specific file name of ffmpeg
func FFmpegExecutable() string {
	if runtime.GOOS == OSWindows {
		return FFmpegName + ".exe"
	}
	return FFmpegName
}

// LocateFFmpeg returns the path of a usable ffmpeg. It looks in dir (when
// given), next to the running executable, then on the search path. Every
// miss is reported when nothing is found.
func LocateFFmpeg(dir string) (string, error) {
	var result error

	var candidates []string
	if dir != "" {
		candidates = append(candidates, filepath.Join(dir, FFmpegExecutable()))
	}
	if self, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(self), FFmpegExecutable()))
	}

	for _, candidate := range candidates {
		if err := checkExecutable(candidate); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		return candidate, nil
	}

	path, err := exec.LookPath(FFmpegExecutable())
	if err == nil {
		return path, nil
	}
	result = multierror.Append(result, err)

	return "", fmt.Errorf("%w: %v", ErrFFmpegNotFound, result)
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: is a directory", path)
	}
	if runtime.GOOS != OSWindows && info.Mode().Perm()&0111 == 0 {
		return fmt.Errorf("%s: not executable", path)
	}
	return nil
}
