package ui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "logo.png"
)

// LoadLogoResource loads the logo from next to the executable, then from the
// working directory
func LoadLogoResource() (fyne.Resource, error) {
	if self, err := os.Executable(); err == nil {
		if res, err := fyne.LoadResourceFromPath(filepath.Join(filepath.Dir(self), AppIcon)); err == nil {
			return res, nil
		}
	}
	return fyne.LoadResourceFromPath(AppIcon)
}
