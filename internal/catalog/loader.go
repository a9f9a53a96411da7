package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/osse101/MultiplierShop/internal/domain"
	"github.com/osse101/MultiplierShop/internal/validation"
)

// SchemaName is the name the catalog JSON schema is registered under.
const SchemaName = "multipliers.schema.json"

//go:embed schema/multipliers.schema.json
var multipliersSchema []byte

var catalogSchema = sync.OnceValues(func() (validation.SchemaValidator, error) {
	schemas := validation.NewSchemaValidator()
	if err := schemas.Register(SchemaName, multipliersSchema); err != nil {
		return nil, err
	}
	return schemas, nil
})

// Sentinel errors for the catalog loader
var (
	ErrDuplicateItem = errors.New("duplicate item")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the TOML configuration for multiplier items.
//
//	[multipliers.small_pill]
//	name = "Small Pill"
//	price = 10
//	gain = 1
type Config struct {
	Version     string `toml:"version"`
	Description string `toml:"description"`

	Multipliers map[string]Def `toml:"multipliers"`
}

// Def represents a single multiplier item in the TOML. Its ID is the table key.
type Def struct {
	ID          string `toml:"-" validate:"required,excludesall= "`
	Name        string `toml:"name" validate:"required"`
	Plural      string `toml:"plural"`
	Description string `toml:"description" validate:"required"`
	Price       int    `toml:"price" validate:"gte=0"`
	Gain        int    `toml:"gain" validate:"gte=1"`
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type tomlLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &tomlLoader{validate: validator.New()}
}

// Load reads and parses a multiplier items TOML file
func (l *tomlLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf(ErrFmtUndecodedFields, ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := checkSchema(data); err != nil {
		return nil, err
	}

	for id, def := range config.Multipliers {
		def.ID = id
		config.Multipliers[id] = def
	}

	return &config, nil
}

// checkSchema validates the raw TOML document against the embedded catalog schema.
func checkSchema(data []byte) error {
	schemas, err := catalogSchema()
	if err != nil {
		return fmt.Errorf(ErrMsgSchemaUnavailable, err)
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	if err := schemas.ValidateDocument(raw, SchemaName); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks the item configuration for errors
func (l *tomlLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Multipliers) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	// Names share a namespace with IDs, since lookups accept either.
	seen := make(map[string]string, len(config.Multipliers)*2)

	for _, def := range config.sortedDefs() {
		if err := l.validate.Struct(def); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, def.ID, verrs[0].Field(), verrs[0].Tag())
			}
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		for _, key := range []string{def.ID, def.Name} {
			k := normalize(key)
			if owner, ok := seen[k]; ok && owner != def.ID {
				return fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateItem, key, owner)
			}
			seen[k] = def.ID
		}
	}

	return nil
}

// Items converts the definitions into domain items ordered by price, then ID.
func (c *Config) Items() []domain.MultiplierItem {
	defs := c.sortedDefs()
	items := make([]domain.MultiplierItem, len(defs))
	for i, def := range defs {
		plural := def.Plural
		if plural == "" {
			plural = def.Name
		}
		items[i] = domain.MultiplierItem{
			ID:          def.ID,
			Name:        def.Name,
			Plural:      plural,
			Description: def.Description,
			Price:       def.Price,
			Gain:        def.Gain,
		}
	}
	return items
}

func (c *Config) sortedDefs() []Def {
	defs := make([]Def, 0, len(c.Multipliers))
	for _, def := range c.Multipliers {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Price != defs[j].Price {
			return defs[i].Price < defs[j].Price
		}
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// LoadCatalog loads, validates and indexes the items at path.
func LoadCatalog(path string) (*Catalog, error) {
	loader := NewLoader()

	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	return New(config.Items()), nil
}
