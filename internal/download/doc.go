// Package download runs the background fetch. A request becomes the option set
// understood by yt-dlp (via github.com/lrstanley/go-ytdlp), and each fetch
// streams progress samples followed by exactly one terminal outcome over a
// channel.
package download
