package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

func FileExists(file string) bool {
	_, err := os.Stat(file)
	return !errors.Is(err, os.ErrNotExist)
}

func WriteJSONToFile[T any](value T, file string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", file, err)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}

func ReadJSONFromFile[T any](file string) (T, error) {
	var value T
	if !FileExists(file) {
		return value, fmt.Errorf("file not found: %s", file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return value, fmt.Errorf("failed to read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", file, err)
	}
	return value, nil
}
