package universe

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

//Options represents the simulation configurable options
type Options struct {
	RowCount   int           `json:"row_count"`
	ColCount   int           `json:"col_count"`
	SeedCount  int           `json:"seed_count"`
	Interval   time.Duration `json:"interval"`
	StartDelay time.Duration `json:"start_delay"`
	MaxSteps   int           `json:"max_steps"`   //0 runs forever
	RandomSeed int64         `json:"random_seed"` //0 is unseeded
	Template   string        `json:"template"`    //empty settles with random data
}

//default options
const (
	DefRowCount   = 50
	DefColCount   = 50
	DefSeedCount  = 200
	DefInterval   = time.Millisecond * 100
	DefStartDelay = time.Second
)

var DefaultOptions = Options{
	RowCount:   DefRowCount,
	ColCount:   DefColCount,
	SeedCount:  DefSeedCount,
	Interval:   DefInterval,
	StartDelay: DefStartDelay,
}

//LoadOptions loads the options from the JSON file on top of the defaults
func LoadOptions(filename string) (Options, error) {
	o := DefaultOptions

	data, err := os.ReadFile(filename)
	if err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &o); err != nil {
		return o, errors.Wrapf(err, "[LoadOptions] failed to unmarshal data from file: %+v", filename)
	}

	return o, nil
}

//Validate checks the options before the grid is created
func (o Options) Validate() error {
	switch {
	case o.RowCount < 0 || o.ColCount < 0:
		return errors.Errorf("[Validate] negative grid dimensions: %v x %v", o.RowCount, o.ColCount)
	case o.SeedCount < 0:
		return errors.Errorf("[Validate] negative seed count: %v", o.SeedCount)
	case o.Interval < 0:
		return errors.Errorf("[Validate] negative interval: %v", o.Interval)
	case o.StartDelay < 0:
		return errors.Errorf("[Validate] negative start delay: %v", o.StartDelay)
	case o.MaxSteps < 0:
		return errors.Errorf("[Validate] negative max steps: %v", o.MaxSteps)
	}
	if o.Template != "" {
		if _, ok := Templates[o.Template]; !ok {
			return errors.Wrapf(ErrUnknownTemplate, "[Validate] %q", o.Template)
		}
	}
	return nil
}
