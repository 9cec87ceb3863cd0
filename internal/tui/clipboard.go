package tui

import "github.com/atotto/clipboard"

// writeClipboard is replaced in tests; the system clipboard is not
// available on CI machines.
var writeClipboard = clipboard.WriteAll
