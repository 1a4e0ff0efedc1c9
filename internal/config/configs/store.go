package configs

import "fmt"

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Store selects where entities are persisted. The memory driver keeps the
// relational tables in process and is meant for local runs.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// Seed loads the fallback dataset into the store at start.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Validate rejects unknown drivers.
func (c Store) Validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMemory:
		return nil
	}
	return fmt.Errorf("unknown driver %q", c.Driver)
}

// Fallback points at a YAML dataset served when the store is unreachable.
// An empty File means the dataset compiled into the binary.
type Fallback struct {
	File string `env:"FILE"`
}
