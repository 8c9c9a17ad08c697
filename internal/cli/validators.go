package cli

import (
	"fmt"
	"strconv"
)

// ParseIndex parses a non-negative issue or description index
func ParseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index: %s (must be a non-negative number)", s)
	}
	if i < 0 {
		return 0, fmt.Errorf("invalid index: %d (must be non-negative)", i)
	}
	return i, nil
}

// ValidateTitle validates an issue title
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("issue title cannot be empty")
	}
	return nil
}

// ValidateTagName validates a tag name
func ValidateTagName(name string) error {
	if name == "" {
		return fmt.Errorf("tag name cannot be empty")
	}
	return nil
}
