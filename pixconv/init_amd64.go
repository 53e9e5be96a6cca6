//go:build amd64 && !purego

package pixconv

// This file imports the amd64 kernel packages to trigger their init()
// functions, which register strategies with the global registry.

import (
	_ "github.com/cwbudde/algo-pixconv/pixconv/internal/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-pixconv/pixconv/internal/arch/generic"
)
