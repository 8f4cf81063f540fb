//go:build js

package config

import "syscall/js"

func browserOrigin() string {
	loc := js.Global().Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return ""
	}
	return loc.Get("origin").String()
}
