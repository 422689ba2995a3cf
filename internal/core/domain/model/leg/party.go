package leg

import (
	"supplytrace/internal/pkg/errs"
)

// PartyType identifies the kind of party at either end of a custody hop.
type PartyType int

const (
	// PartyUnknown represents an invalid or undefined party type.
	PartyUnknown PartyType = iota

	// PartySupplier is the originating supplier. Valid only as a sender.
	PartySupplier

	// PartyDistributor is an intermediate custodian. Valid as sender or recipient.
	PartyDistributor

	// PartyCustomer is the final recipient. Valid only as a recipient.
	PartyCustomer
)

func getPartyTypeStrings() map[PartyType]string {
	return map[PartyType]string{
		PartyUnknown:     "UNKNOWN",
		PartySupplier:    "SUPPLIER",
		PartyDistributor: "DISTRIBUTOR",
		PartyCustomer:    "CUSTOMER",
	}
}

// PartyTypeFromString parses the wire-level name of a party type.
func PartyTypeFromString(s string) (PartyType, error) {
	for partyType, name := range getPartyTypeStrings() {
		if name == s && partyType != PartyUnknown {
			return partyType, nil
		}
	}
	return PartyUnknown, errs.NewValueIsInvalidError("partyType")
}

// String returns the wire-level name of the party type.
func (p PartyType) String() string {
	if str, ok := getPartyTypeStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateAsSender checks the party type can originate a hop.
func (p PartyType) ValidateAsSender() error {
	if p != PartySupplier && p != PartyDistributor {
		return errs.NewValueIsInvalidError("fromType must be SUPPLIER or DISTRIBUTOR")
	}
	return nil
}

// ValidateAsRecipient checks the party type can receive a hop.
func (p PartyType) ValidateAsRecipient() error {
	if p != PartyDistributor && p != PartyCustomer {
		return errs.NewValueIsInvalidError("toType must be DISTRIBUTOR or CUSTOMER")
	}
	return nil
}
