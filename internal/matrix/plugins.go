package matrix

import (
	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
)

// AvailabilityColumn is one client column of the plugin matrix.
type AvailabilityColumn struct {
	ClientID string
	Label    string
}

// AvailabilityCell is a check or a cross, with an optional tooltip.
type AvailabilityCell struct {
	Supported bool
	Tooltip   string
}

// AvailabilityRow is one interface in the plugin-ecosystem table.
type AvailabilityRow struct {
	IDE   *catalog.DeveloperInterface
	Cells []AvailabilityCell
}

// NativeOnlyRow is one interface that only has its built-in assistant.
type NativeOnlyRow struct {
	IDE     *catalog.DeveloperInterface
	Tooltip string
}

// PluginMatrix is the plugin-availability view.
type PluginMatrix struct {
	Columns    []AvailabilityColumn
	Rows       []AvailabilityRow
	NativeOnly []NativeOnlyRow
}

// Empty reports whether neither table has rows.
func (m PluginMatrix) Empty() bool {
	return len(m.Rows) == 0 && len(m.NativeOnly) == 0
}

// IsPluginEcosystem reports whether an interface accepts third-party
// clients: it lists more than one client, or exactly one that is not the
// native assistant.
func IsPluginEcosystem(ide *catalog.DeveloperInterface) bool {
	list := ide.CompatibleAIClients
	return len(list) > 1 || len(list) == 1 && list[0] != catalog.NativeClientID
}

// PartitionIDEs splits interfaces into the plugin-ecosystem group and the
// native-only group. Every interface lands in exactly one of the two.
func PartitionIDEs(ides []*catalog.DeveloperInterface) (plugin, nativeOnly []*catalog.DeveloperInterface) {
	for _, ide := range ides {
		if IsPluginEcosystem(ide) {
			plugin = append(plugin, ide)
		} else {
			nativeOnly = append(nativeOnly, ide)
		}
	}
	return plugin, nativeOnly
}

// BuildPluginMatrix builds the plugin-availability view. The Native column
// always comes first; the other columns are the distinct non-native client
// IDs referenced by plugin-ecosystem interfaces, in first-seen order.
func BuildPluginMatrix(state *catalog.State) PluginMatrix {
	var m PluginMatrix
	if state == nil {
		return m
	}
	native := state.Client(catalog.NativeClientID)
	plugin, nativeOnly := PartitionIDEs(state.IDEs)

	m.Columns = append(m.Columns, AvailabilityColumn{ClientID: catalog.NativeClientID, Label: "Native"})
	seen := map[string]bool{catalog.NativeClientID: true}
	for _, ide := range plugin {
		for _, id := range ide.CompatibleAIClients {
			if seen[id] {
				continue
			}
			seen[id] = true
			label := id
			if c := state.Client(id); c != nil {
				label = c.DisplayName()
			}
			m.Columns = append(m.Columns, AvailabilityColumn{ClientID: id, Label: label})
		}
	}

	for _, ide := range plugin {
		listed := make(map[string]bool, len(ide.CompatibleAIClients))
		for _, id := range ide.CompatibleAIClients {
			listed[id] = true
		}
		row := AvailabilityRow{IDE: ide, Cells: make([]AvailabilityCell, len(m.Columns))}
		for i, col := range m.Columns {
			cell := AvailabilityCell{Supported: listed[col.ClientID]}
			if col.ClientID == catalog.NativeClientID {
				cell.Tooltip = native.NativeName(ide.ID)
			}
			row.Cells[i] = cell
		}
		m.Rows = append(m.Rows, row)
	}

	for _, ide := range nativeOnly {
		m.NativeOnly = append(m.NativeOnly, NativeOnlyRow{IDE: ide, Tooltip: native.NativeName(ide.ID)})
	}
	return m
}
