package isoxml

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed data/list-one.xml
var listOne []byte

//go:embed data/list-three.xml
var listThree []byte

// Sources holds the raw content of both ISO 4217 lists.
type Sources struct {
	Active   []byte // list one: current currency & funds
	Historic []byte // list three: historic denominations
}

// DefaultSources returns the lists shipped with the binary.
func DefaultSources() Sources {
	return Sources{Active: listOne, Historic: listThree}
}

// LoadSources reads the lists from the given files.
// An empty path selects the embedded copy of that list.
func LoadSources(activePath, historicPath string) (Sources, error) {
	src := DefaultSources()

	if activePath != "" {
		data, err := os.ReadFile(activePath)
		if err != nil {
			return Sources{}, fmt.Errorf("failed to read active list: %w", err)
		}
		src.Active = data
	}

	if historicPath != "" {
		data, err := os.ReadFile(historicPath)
		if err != nil {
			return Sources{}, fmt.Errorf("failed to read historic list: %w", err)
		}
		src.Historic = data
	}

	return src, nil
}
