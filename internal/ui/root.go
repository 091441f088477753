package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/deeptube/internal/model"
	"github.com/ytget/deeptube/internal/platform"
	"github.com/ytget/deeptube/internal/session"
)

// Controller receives the user's actions
type Controller interface {
	Submit() error
	SetMode(mode model.Mode)
}

// Options configures the root window
type Options struct {
	Language   string
	ProjectURL string
}

// noticeKeys maps controller notices to localized texts
var noticeKeys = map[session.Notice]string{
	session.NoticeEnterURL:         KeyEnterURL,
	session.NoticePathNotSpecified: KeyPathNotSpecified,
	session.NoticeBusy:             KeyBusy,
}

// RootUI represents the main window. It implements session.View.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	localization *Localization
	projectURL   *url.URL
	controller   Controller
	log          *zap.SugaredLogger

	mode model.Mode

	urlLabel         *widget.Label
	urlEntry         *widget.Entry
	qualityLabel     *widget.Label
	qualitySelect    *widget.Select
	audioLabel       *widget.Label
	audioSelect      *widget.Select
	videoFormatLabel *widget.Label
	videoSelect      *widget.Select
	modeRadio        *widget.RadioGroup
	progressBar      *widget.ProgressBar
	downloadBtn      *widget.Button
	linkBtn          *widget.Button
}

var _ session.View = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts Options, log *zap.SugaredLogger) *RootUI {
	if log == nil {
		log = zap.S()
	}

	localization := NewLocalization()
	localization.SetLanguage(opts.Language)

	ui := &RootUI{
		window:       window,
		app:          app,
		localization: localization,
		log:          log.Named("ui"),
		mode:         model.DefaultMode,
	}

	if opts.ProjectURL != "" {
		projectURL, err := url.Parse(opts.ProjectURL)
		if err != nil {
			ui.log.Warnw("invalid project URL", "url", opts.ProjectURL, "error", err)
		} else {
			ui.projectURL = projectURL
		}
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// SetController connects the user's actions to c and applies the current mode
func (ui *RootUI) SetController(c Controller) {
	ui.controller = c
	c.SetMode(ui.mode)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyURLLabel))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLPlaceholder))
	ui.urlEntry.Validator = ui.validateURL
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeyQualityLabel))
	ui.qualitySelect = widget.NewSelect(model.QualityOptions, nil)
	ui.qualitySelect.SetSelected(model.DefaultQuality)

	ui.audioLabel = widget.NewLabel(ui.localization.GetText(KeyAudioFormatLabel))
	ui.audioSelect = widget.NewSelect(model.AudioFormatOptions, nil)
	ui.audioSelect.SetSelected(model.DefaultAudioFormat)

	ui.videoFormatLabel = widget.NewLabel(ui.localization.GetText(KeyVideoFormatLabel))
	ui.videoSelect = widget.NewSelect(model.VideoFormatOptions, nil)
	ui.videoSelect.SetSelected(model.DefaultVideoFormat)

	ui.modeRadio = widget.NewRadioGroup(ui.modeOptions(), ui.onModeChanged)
	ui.modeRadio.Horizontal = true
	ui.modeRadio.Required = true
	ui.modeRadio.SetSelected(ui.modeLabel(ui.mode))

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = ProgressMax
	ui.progressBar.Hide()

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.linkBtn = widget.NewButton(IconLink, ui.onOpenProjectPage)
	ui.linkBtn.Importance = widget.LowImportance
	if ui.projectURL == nil {
		ui.linkBtn.Hide()
	}

	form := container.New(layout.NewFormLayout(),
		ui.urlLabel, ui.urlEntry,
		ui.qualityLabel, ui.qualitySelect,
		ui.audioLabel, ui.audioSelect,
		ui.videoFormatLabel, ui.videoSelect,
	)

	actions := container.NewBorder(nil, nil, nil, ui.linkBtn, ui.downloadBtn)

	content := container.NewVBox()
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		content.Add(logoImage)
	} else {
		ui.log.Debugw("logo not loaded", "error", err)
	}
	content.Add(form)
	content.Add(container.NewCenter(ui.modeRadio))
	content.Add(ui.progressBar)
	content.Add(actions)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile))
	if ui.projectURL != nil {
		fileMenu.Items = append(fileMenu.Items, fyne.NewMenuItem(ui.localization.GetText(KeyProjectPage), ui.onOpenProjectPage))
	}

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.LanguageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange switches the interface language for this run
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlLabel.SetText(ui.localization.GetText(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLPlaceholder))
	ui.qualityLabel.SetText(ui.localization.GetText(KeyQualityLabel))
	ui.audioLabel.SetText(ui.localization.GetText(KeyAudioFormatLabel))
	ui.videoFormatLabel.SetText(ui.localization.GetText(KeyVideoFormatLabel))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))

	// Assigning Selected directly does not fire OnChanged
	ui.modeRadio.Options = ui.modeOptions()
	ui.modeRadio.Selected = ui.modeLabel(ui.mode)
	ui.modeRadio.Refresh()
}

func (ui *RootUI) modeOptions() []string {
	return []string{ui.modeLabel(model.ModeVideo), ui.modeLabel(model.ModeAudioOnly)}
}

func (ui *RootUI) modeLabel(mode model.Mode) string {
	if mode == model.ModeAudioOnly {
		return ui.localization.GetText(KeyModeAudio)
	}
	return ui.localization.GetText(KeyModeVideo)
}

func (ui *RootUI) onModeChanged(selected string) {
	mode := model.ModeVideo
	if selected == ui.localization.GetText(KeyModeAudio) {
		mode = model.ModeAudioOnly
	}
	ui.mode = mode
	if ui.controller != nil {
		ui.controller.SetMode(mode)
	}
}

// validateURL is a hint only; submission does not depend on it
func (ui *RootUI) validateURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	for _, scheme := range AllowedURLSchemes {
		if parsedURL.Scheme == scheme {
			return nil
		}
	}
	return errors.New(ui.localization.GetText(KeyInvalidURL))
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	if ui.controller == nil {
		return
	}
	if err := ui.controller.Submit(); err != nil {
		ui.log.Debugw("submission rejected", "error", err)
	}
}

func (ui *RootUI) onOpenProjectPage() {
	if ui.projectURL == nil {
		return
	}
	if err := ui.app.OpenURL(ui.projectURL); err != nil {
		ui.log.Warnw("failed to open project page", "url", ui.projectURL.String(), "error", err)
	}
}

// revealFile shows a finished download in the system file manager
func (ui *RootUI) revealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.log.Warnw("failed to reveal file", "path", filePath, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// openFile opens a finished download with the default application
func (ui *RootUI) openFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.log.Warnw("failed to open file", "path", filePath, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// Form implements session.View
func (ui *RootUI) Form() session.Form {
	return session.Form{
		URL:         ui.urlEntry.Text,
		Mode:        ui.mode,
		Quality:     ui.qualitySelect.Selected,
		AudioFormat: ui.audioSelect.Selected,
		VideoFormat: ui.videoSelect.Selected,
	}
}

// ChooseDestination implements session.View. The save dialog creates the
// chosen file; it is closed and removed again when still empty.
func (ui *RootUI) ChooseDestination(callback func(path string)) {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.log.Errorw("save dialog failed", "error", err)
			callback("")
			return
		}
		if writer == nil {
			callback("")
			return
		}

		path := writer.URI().Path()
		if err := writer.Close(); err != nil {
			ui.log.Warnw("failed to close destination placeholder", "path", path, "error", err)
		}
		if err := platform.RemoveEmptyFile(path); err != nil {
			ui.log.Warnw("failed to remove destination placeholder", "path", path, "error", err)
		}
		callback(path)
	}, ui.window)

	if dir, err := platform.GetHomeDownloadsDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			save.SetLocation(lister)
		}
	}
	save.Show()
}

// SetVideoControlsEnabled implements session.View
func (ui *RootUI) SetVideoControlsEnabled(enabled bool) {
	if enabled {
		ui.qualitySelect.Enable()
		ui.videoSelect.Enable()
	} else {
		ui.qualitySelect.Disable()
		ui.videoSelect.Disable()
	}
}

// SetBusy implements session.View
func (ui *RootUI) SetBusy(busy bool) {
	if busy {
		ui.downloadBtn.Disable()
	} else {
		ui.downloadBtn.Enable()
	}
}

// ShowProgress implements session.View
func (ui *RootUI) ShowProgress(percent float64) {
	ui.progressBar.SetValue(percent)
	ui.progressBar.Show()
}

// HideProgress implements session.View
func (ui *RootUI) HideProgress() {
	ui.progressBar.Hide()
	ui.progressBar.SetValue(0)
}

// ShowWarning implements session.View
func (ui *RootUI) ShowWarning(notice session.Notice) {
	key, ok := noticeKeys[notice]
	if !ok {
		key = string(notice)
	}
	dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(key), ui.window)
}

// ShowSuccess implements session.View
func (ui *RootUI) ShowSuccess(outputPath string) {
	message := ui.localization.GetText(KeyDownloadCompleted)
	ui.app.SendNotification(fyne.NewNotification(ui.localization.GetText(KeySuccess), message))

	var success dialog.Dialog
	revealBtn := widget.NewButton(ui.localization.GetText(KeyShowInFolder), func() {
		success.Hide()
		ui.revealFile(outputPath)
	})
	revealBtn.Importance = widget.HighImportance
	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		success.Hide()
		ui.openFile(outputPath)
	})

	content := container.NewVBox(
		widget.NewLabel(message),
		container.NewHBox(revealBtn, openBtn),
	)
	success = dialog.NewCustom(ui.localization.GetText(KeySuccess), ui.localization.GetText(KeyOK), content, ui.window)
	success.Show()
}

// ShowError implements session.View
func (ui *RootUI) ShowError(message string) {
	dialog.ShowError(fmt.Errorf(ui.localization.GetText(KeyErrorOccurred), message), ui.window)
}

// Do implements session.View
func (ui *RootUI) Do(fn func()) {
	fyne.Do(fn)
}
