//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("WgrepNewScanner", js.FuncOf(newScanner))
	js.Global().Set("WgrepScan", js.FuncOf(scan))
	js.Global().Set("WgrepScanBatch", js.FuncOf(scanBatch))
	js.Global().Set("WgrepCloseScanner", js.FuncOf(closeScanner))

	// Keep WASM running
	<-make(chan struct{})
}
