// Package platform contains OS integration: locating ffmpeg and revealing
// downloaded files in the system file manager.
package platform
