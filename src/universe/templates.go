package universe

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownTemplate = errors.New("unknown template")

//Template represent the seeding template which can used to settle the grid with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates []Coord //live cells
}

var Templates = map[string]Template{
	"sample": {
		"sample",
		"the test sample with 3 stable patterns",
		[]Coord{
			{1, 1}, {1, 2},
			{2, 1}, {2, 2},
			{3, 3},
			{4, 2},
			{4, 3},
			{5, 3},
		},
	},
	"blinker": {
		"blinker",
		"period 2 oscillator",
		[]Coord{{1, 0}, {1, 1}, {1, 2}},
	},
	"glider": {
		"glider",
		"moves one cell diagonally every 4 generations",
		[]Coord{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
}

//TemplateNames returns the sorted template names
func TemplateNames() []string {
	names := make([]string, 0, len(Templates))
	for k := range Templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
