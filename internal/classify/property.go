package classify

// Property is the chemical property category of an amino acid.
type Property string

// Property categories. PropertyUnknown is returned for amino acids
// without a registered property.
const (
	PropertyUnknown     Property = ""
	PropertyUncharged   Property = "uncharged"
	PropertyPolar       Property = "polar"
	PropertyHydrophobic Property = "hydrophobic"
)

var propertyTable = map[byte]Property{
	'A': PropertyUncharged,
	'G': PropertyUncharged,
	'C': PropertyPolar,
	'M': PropertyPolar,
	'W': PropertyHydrophobic,
}

// PropertyOf returns the chemical property of an amino acid,
// or PropertyUnknown if none is registered.
func PropertyOf(aa byte) Property {
	return propertyTable[aa]
}

// String returns the category name, "unknown" for PropertyUnknown.
func (p Property) String() string {
	if p == PropertyUnknown {
		return "unknown"
	}
	return string(p)
}
