// Package shellbar is a system tray shell that runs scripts on behalf of a
// front-end and reports their captured output.
package shellbar

// Version is the shellbar release version.
const Version = "0.1.0"
