package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides walks the config struct and replaces any field whose
// `env` tag names a set environment variable. Only the kinds the Config
// actually uses are supported: string, int, int64 and bool. Durations stay
// strings here and are parsed where they are consumed.
func applyEnvOverrides(cfg *Config) error {
	return overrideFields(reflect.ValueOf(cfg).Elem())
}

func overrideFields(section reflect.Value) error {
	t := section.Type()
	for i := 0; i < t.NumField(); i++ {
		field := section.Field(i)
		if field.Kind() == reflect.Struct {
			if err := overrideFields(field); err != nil {
				return err
			}
			continue
		}

		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		raw, set := os.LookupEnv(name)
		if !set {
			continue
		}
		if err := assignField(field, raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func assignField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", raw)
		}
		field.SetInt(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected a boolean, got %q", raw)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("cannot override a %s field from the environment", field.Kind())
	}
	return nil
}
