package enums

import "fmt"

// ServiceType classifies bookable storefront services.
type ServiceType string

const (
	ServiceGiftWrapping   ServiceType = "gift-wrapping"
	ServiceEventPackaging ServiceType = "event-packaging"
	ServiceCorporateGifts ServiceType = "corporate-gifts"
	ServiceCustomDesign   ServiceType = "custom-design"
)

var validServiceTypes = []ServiceType{
	ServiceGiftWrapping,
	ServiceEventPackaging,
	ServiceCorporateGifts,
	ServiceCustomDesign,
}

// String implements fmt.Stringer.
func (s ServiceType) String() string {
	return string(s)
}

// IsValid reports whether the service type is recognized.
func (s ServiceType) IsValid() bool {
	for _, candidate := range validServiceTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseServiceType converts a raw string into a ServiceType.
func ParseServiceType(value string) (ServiceType, error) {
	for _, candidate := range validServiceTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service type %q", value)
}
