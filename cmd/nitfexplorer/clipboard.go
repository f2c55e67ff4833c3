package main

import "github.com/atotto/clipboard"

// yank copies text to the system clipboard, the same "y" affordance
// hiveexplorer offers for a registry value's decoded content.
func yank(text string) error {
	if text == "" {
		return nil
	}
	return clipboard.WriteAll(text)
}
