//go:build !js

package config

func browserOrigin() string { return "" }
