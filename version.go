// Package quill regenerates Python modules from Qt Designer and Qt resource files.
package quill

// Version is the current quill release.
const Version = "0.1.0"
