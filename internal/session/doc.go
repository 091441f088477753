// Package session holds the controller between the form and the download
// service. It allows a single fetch at a time and reflects progress and the
// terminal outcome back onto the view.
package session
