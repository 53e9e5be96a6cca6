//go:build !amd64 || purego

package pixconv

import (
	_ "github.com/cwbudde/algo-pixconv/pixconv/internal/arch/generic"
)
