package shipment

import (
	"fmt"
	"strings"

	"freightcore/internal/pkg/errs"
)

// TransportMode is the transport category of a shipment. It determines the
// mode code embedded in the shipment reference and in sequence counter keys.
type TransportMode int

const (
	// ModeUnknown represents an invalid or undefined transport mode.
	ModeUnknown TransportMode = iota

	// ModeRoRo is roll-on/roll-off vehicle shipping.
	ModeRoRo

	// ModeFCL is a full container load.
	ModeFCL

	// ModeLCL is a less-than-container load, grouped with general cargo
	// for reference numbering.
	ModeLCL

	// ModeAir is air freight.
	ModeAir

	// ModeDocuments is a documents-only consignment.
	ModeDocuments

	// ModeGeneral is any other cargo category.
	ModeGeneral
)

// GeneralModeCode is the reference code used for valid transport modes
// without a dedicated code of their own.
const GeneralModeCode = "GEN"

func getModeStrings() map[TransportMode]string {
	return map[TransportMode]string{
		ModeUnknown:   "Unknown",
		ModeRoRo:      "RoRo",
		ModeFCL:       "FCL",
		ModeLCL:       "LCL",
		ModeAir:       "Air",
		ModeDocuments: "Documents",
		ModeGeneral:   "General",
	}
}

func getValidModeStrings() map[TransportMode]string {
	modes := getModeStrings()
	delete(modes, ModeUnknown)
	return modes
}

// Validate checks if the TransportMode value is valid.
// ModeUnknown (0) and any out-of-domain values are invalid.
func (m TransportMode) Validate() error {
	if _, ok := getValidModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transportMode",
			fmt.Errorf("%d is not a valid transport mode", m),
		)
	}
	return nil
}

// String returns the display name of the transport mode, e.g. "RoRo".
// Returns "Unknown" for invalid mode values.
func (m TransportMode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the short reference code for the mode: RORO, FCL, AIR or DOC.
// Valid modes without a dedicated code (LCL, General) return GeneralModeCode.
//
// Returns an error only when the mode itself is out of domain.
func (m TransportMode) Code() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	switch m {
	case ModeRoRo:
		return "RORO", nil
	case ModeFCL:
		return "FCL", nil
	case ModeAir:
		return "AIR", nil
	case ModeDocuments:
		return "DOC", nil
	default:
		return GeneralModeCode, nil
	}
}

// ModeFromString parses a display name back into a TransportMode value.
// Matching is case-insensitive. Returns an error for unrecognized names.
func ModeFromString(value string) (TransportMode, error) {
	for mode, name := range getValidModeStrings() {
		if strings.EqualFold(name, value) {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transportMode",
		fmt.Errorf("%q is not a valid transport mode name", value),
	)
}
