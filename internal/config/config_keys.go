// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by "docrec config", while config.go focuses on YAML
// structure and loading.
//
// Design: Pointers are used for optional booleans and limits so we can
// distinguish between "not set" (nil) and "explicitly set to zero/false".
// Set validates through Validate so a bad value never reaches disk.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"format.date", "format.include_id", "format.include_tags",
		"format.timezone", "format.locale",
		"id.generator",
		"limits.max_content",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	if !IsValidKey(key) {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return c.All()[key], nil
}

// Set sets a configuration key from its string form.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "format.date":
		next.Format.Date = value
	case "format.include_id":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		next.Format.IncludeID = &b
	case "format.include_tags":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		next.Format.IncludeTags = &b
	case "format.timezone":
		next.Format.Timezone = value
	case "format.locale":
		next.Format.Locale = value
	case "id.generator":
		next.ID.Generator = strings.ToLower(value)
	case "limits.max_content":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_content must be a positive integer", ErrInvalidValue)
		}
		next.Limits.MaxContent = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
	}
}

// All returns all configuration values as a map, defaults applied.
func (c *Config) All() map[string]string {
	generator := c.ID.Generator
	if generator == "" {
		generator = GeneratorTime
	}
	return map[string]string{
		"format.date":         string(c.DateFormat()),
		"format.include_id":   strconv.FormatBool(c.IncludeID()),
		"format.include_tags": strconv.FormatBool(c.IncludeTags()),
		"format.timezone":     c.Format.Timezone,
		"format.locale":       c.Format.Locale,
		"id.generator":        generator,
		"limits.max_content":  strconv.FormatInt(c.MaxContent(), 10),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "format.date":
		return c.Format.Date != ""
	case "format.include_id":
		return c.Format.IncludeID != nil
	case "format.include_tags":
		return c.Format.IncludeTags != nil
	case "format.timezone":
		return c.Format.Timezone != ""
	case "format.locale":
		return c.Format.Locale != ""
	case "id.generator":
		return c.ID.Generator != ""
	case "limits.max_content":
		return c.Limits.MaxContent != nil
	default:
		return false
	}
}
