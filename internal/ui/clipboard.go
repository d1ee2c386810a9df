package ui

import "github.com/atotto/clipboard"

// Clipboard receives copied text
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// SystemClipboard writes to the OS clipboard
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
