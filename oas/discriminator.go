package oas

// Discriminator names the data property that selects among composed union
// members, with an explicit value-to-reference mapping.
//
// PropertyName is always non-blank on a built Discriminator; mapping
// targets are canonical reference paths. Mapping keys keep insertion
// order; a duplicate discriminant value keeps the last written target.
type Discriminator struct {
	PropertyName string
	Mapping      *OrderedMap[string]
}

// Clone returns a deep copy.
func (d *Discriminator) Clone() *Discriminator {
	if d == nil {
		return nil
	}
	return &Discriminator{
		PropertyName: d.PropertyName,
		Mapping:      d.Mapping.Clone(),
	}
}
