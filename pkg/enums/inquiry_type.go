package enums

import "fmt"

// InquiryType classifies contact-form messages.
type InquiryType string

const (
	InquiryOrder     InquiryType = "order"
	InquiryProducts  InquiryType = "products"
	InquiryServices  InquiryType = "services"
	InquiryComplaint InquiryType = "complaint"
	InquiryOther     InquiryType = "other"
)

var validInquiryTypes = []InquiryType{
	InquiryOrder,
	InquiryProducts,
	InquiryServices,
	InquiryComplaint,
	InquiryOther,
}

// String implements fmt.Stringer.
func (i InquiryType) String() string {
	return string(i)
}

// IsValid reports whether the inquiry type is recognized.
func (i InquiryType) IsValid() bool {
	for _, candidate := range validInquiryTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInquiryType converts a raw string into an InquiryType.
func ParseInquiryType(value string) (InquiryType, error) {
	for _, candidate := range validInquiryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inquiry type %q", value)
}
