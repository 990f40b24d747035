package model

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	if len(es) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("task input validation failed:\n")
	for _, e := range es {
		sb.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
	}
	return sb.String()
}
