package services

import (
	"maharaja-dine-service/config"
)

// Diagnostic receives recoverable persistence problems: a stored blob that
// exists but cannot be read and was replaced by defaults. The operation
// itself still succeeds; the hook exists so the fallback is observable
// instead of silent.
type Diagnostic func(key string, err error)

func defaultDiagnostic(key string, err error) {
	config.Warning("blob %s unreadable, falling back to defaults: %v", key, err)
}
