package catalog

import (
	"agenda-web/internal/pkg/errs"
)

var (
	ErrServiceNotFound  = errs.New("service not found in catalog")
	ErrDuplicateService = errs.New("duplicate service id in catalog")
	ErrInvalidService   = errs.New("invalid service option")
)

type BusinessType string

const (
	BusinessBarber       BusinessType = "barberia"
	BusinessPsychologist BusinessType = "psicologo"
	BusinessDentist      BusinessType = "dentista"
	BusinessOther        BusinessType = "otro"
)

// ServiceOption is immutable once loaded. Price is in the smallest currency unit.
type ServiceOption struct {
	ID          int
	Name        string
	Price       int64
	DurationMin int
	Description string
}

func (s ServiceOption) Validate() error {
	if s.Name == "" || s.Price < 0 || s.DurationMin <= 0 {
		return errs.Wrapf(ErrInvalidService, "service %d", s.ID)
	}
	return nil
}

// Catalog is the session-constant list of services for one business type.
type Catalog struct {
	businessType BusinessType
	options      []ServiceOption
	index        map[int]int
}

// New selects the built-in catalog for bt, falling back to BusinessOther.
func New(bt BusinessType) *Catalog {
	opts, ok := builtin[bt]
	if !ok {
		bt = BusinessOther
		opts = builtin[BusinessOther]
	}
	c, err := NewFromOptions(bt, opts)
	if err != nil {
		// built-in data is covered by tests
		panic(err)
	}
	return c
}

func NewFromOptions(bt BusinessType, opts []ServiceOption) (*Catalog, error) {
	c := &Catalog{
		businessType: bt,
		options:      make([]ServiceOption, 0, len(opts)),
		index:        make(map[int]int, len(opts)),
	}
	for _, o := range opts {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[o.ID]; dup {
			return nil, errs.Wrapf(ErrDuplicateService, "id %d", o.ID)
		}
		c.index[o.ID] = len(c.options)
		c.options = append(c.options, o)
	}
	return c, nil
}

func (c *Catalog) BusinessType() BusinessType { return c.businessType }

func (c *Catalog) Options() []ServiceOption {
	out := make([]ServiceOption, len(c.options))
	copy(out, c.options)
	return out
}

func (c *Catalog) Lookup(id int) (ServiceOption, error) {
	i, ok := c.index[id]
	if !ok {
		return ServiceOption{}, errs.Wrapf(ErrServiceNotFound, "id %d", id)
	}
	return c.options[i], nil
}
