// Package config loads the optional z340.yaml (or z340.json) settings file.
package config
