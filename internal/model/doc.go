// Package model defines the data shared by the session controller, the
// download service and the UI. Request is the form's submission; FetchTask
// records one background fetch.
package model
