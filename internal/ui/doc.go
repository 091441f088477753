// Package ui contains the Fyne-based desktop window: the download form, the
// progress indicator and the dialogs the session controller asks for. All UI
// strings are localized via Localization.
package ui
