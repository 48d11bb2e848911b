package shared

import "strings"

// Attribute indexes a character's attribute slots. Values are stable and
// contiguous from zero so they can index fixed-size slices.
type Attribute int

const (
	AttributeVitality Attribute = iota
	AttributeStrength
	AttributeDexterity
)

// AttributeCount is the number of members in the enumeration
const AttributeCount = int(AttributeDexterity) + 1

// Attributes lists every attribute in index order
var Attributes = []Attribute{AttributeVitality, AttributeStrength, AttributeDexterity}

var attributeNames = [AttributeCount]string{
	AttributeVitality:  "Vitality",
	AttributeStrength:  "Strength",
	AttributeDexterity: "Dexterity",
}

// IsValid reports whether a is a member of the enumeration
func (a Attribute) IsValid() bool {
	return a >= 0 && int(a) < AttributeCount
}

func (a Attribute) String() string {
	if !a.IsValid() {
		return "Unknown"
	}
	return attributeNames[a]
}

// ParseAttribute looks up an attribute by display name, ignoring case
func ParseAttribute(name string) (Attribute, bool) {
	for _, a := range Attributes {
		if strings.EqualFold(attributeNames[a], strings.TrimSpace(name)) {
			return a, true
		}
	}
	return 0, false
}
