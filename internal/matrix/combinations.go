package matrix

import (
	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

// BuildCombinations derives every valid (interface, client) pair. Order
// follows the interface manifest order, then the order clients appear in
// each interface's compatibility list. Client IDs that do not resolve are
// skipped.
func BuildCombinations(state *catalog.State) []catalog.Combination {
	if state == nil {
		return nil
	}
	var combos []catalog.Combination
	for _, ide := range state.IDEs {
		seen := make(map[string]bool, len(ide.CompatibleAIClients))
		for _, clientID := range ide.CompatibleAIClients {
			client := state.Client(clientID)
			if client == nil || seen[clientID] {
				continue
			}
			seen[clientID] = true
			combos = append(combos, catalog.Combination{
				Key:    catalog.NewComboKey(ide.ID, clientID),
				IDE:    ide,
				Client: client,
			})
		}
	}
	return combos
}

// GroupByIDE buckets combinations by interface ID, keeping their order.
func GroupByIDE(combos []catalog.Combination) map[string][]catalog.Combination {
	out := make(map[string][]catalog.Combination)
	for _, c := range combos {
		out[c.Key.IDE] = append(out[c.Key.IDE], c)
	}
	return out
}

// Keys returns the combination keys in order.
func Keys(combos []catalog.Combination) []catalog.ComboKey {
	keys := make([]catalog.ComboKey, len(combos))
	for i, c := range combos {
		keys[i] = c.Key
	}
	return keys
}

// RowLabel is the label a combination gets inside an expanded interface
// group: the client name, or for the native client the interface-specific
// native name, falling back to "<interface> (Native)".
func RowLabel(c catalog.Combination) string {
	if c.Key.IsNative() {
		if name := c.Client.NativeName(c.Key.IDE); name != "" {
			return name
		}
		return c.IDE.DisplayName() + " (Native)"
	}
	return c.Client.DisplayName()
}
