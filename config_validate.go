package main

import (
	"fmt"
	"strings"
)

var supportedBurnchainModes = []string{"mocknet", "helium", "neon", "neon-god"}

// validateBurnchainConfig rejects unknown modes and helium configs that
// omit the mining public key.
func validateBurnchainConfig(b *BurnchainConfig) error {
	supported := false
	for _, m := range supportedBurnchainModes {
		if b.Mode == m {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("burnchain.mode %q not supported (should be: %s)",
			b.Mode, strings.Join(supportedBurnchainModes, ", "))
	}
	if b.Mode == "helium" && b.LocalMiningPublicKey == "" {
		return fmt.Errorf("missing setting burnchain.local_mining_public_key (mandatory for helium)")
	}
	return nil
}
