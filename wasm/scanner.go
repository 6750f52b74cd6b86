//go:build wasm

package main

import (
	"encoding/json"
	"sync"
	"syscall/js"

	"github.com/praetorian-inc/wgrep/pkg/scanner"
)

var (
	scanners   = make(map[int]*scanner.Core)
	scannersMu sync.RWMutex
	nextID     int
)

// newScanner creates a new scanner from an options JSON document.
// JS: WgrepNewScanner(optionsJSON) -> {handle} or {error}
func newScanner(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "optionsJSON argument required"}
	}

	core, err := scanner.NewCore(args[0].String(), scanner.NoopLogger{})
	if err != nil {
		return map[string]interface{}{"error": "failed to create scanner: " + err.Error()}
	}

	scannersMu.Lock()
	id := nextID
	nextID++
	scanners[id] = core
	scannersMu.Unlock()

	return map[string]interface{}{"handle": id}
}

func lookup(handle int) (*scanner.Core, bool) {
	scannersMu.RLock()
	defer scannersMu.RUnlock()
	core, ok := scanners[handle]
	return core, ok
}

// scan scans a single content string.
// JS: WgrepScan(handle, content, source) -> JSON result or {error}
func scan(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and content arguments required"}
	}

	core, ok := lookup(args[0].Int())
	if !ok {
		return map[string]interface{}{"error": "invalid scanner handle"}
	}

	source := ""
	if len(args) > 2 {
		source = args[2].String()
	}

	result, err := core.Scan(args[1].String(), source)
	if err != nil {
		return map[string]interface{}{"error": "scan failed: " + err.Error()}
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal results: " + err.Error()}
	}
	return string(jsonBytes)
}

// scanBatch scans multiple content items.
// JS: WgrepScanBatch(handle, itemsJSON) -> JSON results or {error}
func scanBatch(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and itemsJSON arguments required"}
	}

	core, ok := lookup(args[0].Int())
	if !ok {
		return map[string]interface{}{"error": "invalid scanner handle"}
	}

	var items []scanner.ContentItem
	if err := json.Unmarshal([]byte(args[1].String()), &items); err != nil {
		return map[string]interface{}{"error": "failed to parse items JSON: " + err.Error()}
	}

	batchResult, err := core.ScanBatch(items)
	if err != nil {
		return map[string]interface{}{"error": "batch scan failed: " + err.Error()}
	}

	jsonBytes, err := json.Marshal(batchResult)
	if err != nil {
		return map[string]interface{}{"error": "failed to marshal results: " + err.Error()}
	}
	return string(jsonBytes)
}

// closeScanner forgets a scanner handle.
// JS: WgrepCloseScanner(handle)
func closeScanner(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	scannersMu.Lock()
	_, ok := scanners[handle]
	delete(scanners, handle)
	scannersMu.Unlock()

	if !ok {
		return map[string]interface{}{"error": "invalid scanner handle"}
	}
	return nil
}
