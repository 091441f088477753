// Package app assembles the logger, the fetch engine, the session controller
// and the main window from a loaded configuration.
package app
