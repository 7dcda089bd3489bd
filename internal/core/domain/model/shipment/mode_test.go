package shipment_test

import (
	"fmt"
	"testing"

	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportMode_Validate(t *testing.T) {
	t.Run("should validate valid modes", func(t *testing.T) {
		validModes := []shipment.TransportMode{
			shipment.ModeRoRo,
			shipment.ModeFCL,
			shipment.ModeLCL,
			shipment.ModeAir,
			shipment.ModeDocuments,
			shipment.ModeGeneral,
		}

		for _, mode := range validModes {
			t.Run(mode.String(), func(t *testing.T) {
				require.NoError(t, mode.Validate())
			})
		}
	})

	t.Run("should reject ModeUnknown and out-of-domain values", func(t *testing.T) {
		for _, mode := range []shipment.TransportMode{shipment.ModeUnknown, shipment.TransportMode(-1), shipment.TransportMode(7)} {
			t.Run(fmt.Sprintf("mode value %d", int(mode)), func(t *testing.T) {
				err := mode.Validate()
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), "transportMode")
			})
		}
	})
}

func TestTransportMode_Code(t *testing.T) {
	t.Run("should map dedicated codes", func(t *testing.T) {
		testCases := []struct {
			mode     shipment.TransportMode
			expected string
		}{
			{shipment.ModeRoRo, "RORO"},
			{shipment.ModeFCL, "FCL"},
			{shipment.ModeAir, "AIR"},
			{shipment.ModeDocuments, "DOC"},
		}

		for _, tc := range testCases {
			t.Run(tc.expected, func(t *testing.T) {
				code, err := tc.mode.Code()
				require.NoError(t, err)
				assert.Equal(t, tc.expected, code)
			})
		}
	})

	t.Run("should group LCL and General under GEN", func(t *testing.T) {
		for _, mode := range []shipment.TransportMode{shipment.ModeLCL, shipment.ModeGeneral} {
			code, err := mode.Code()
			require.NoError(t, err)
			assert.Equal(t, shipment.GeneralModeCode, code)
		}
	})

	t.Run("should fail for invalid modes", func(t *testing.T) {
		for _, mode := range []shipment.TransportMode{shipment.ModeUnknown, shipment.TransportMode(99)} {
			_, err := mode.Code()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestTransportMode_String(t *testing.T) {
	assert.Equal(t, "RoRo", shipment.ModeRoRo.String())
	assert.Equal(t, "Documents", shipment.ModeDocuments.String())
	assert.Equal(t, "Unknown", shipment.ModeUnknown.String())
	assert.Equal(t, "Unknown", shipment.TransportMode(42).String())
}

func TestModeFromString(t *testing.T) {
	t.Run("should round-trip every valid mode", func(t *testing.T) {
		for _, mode := range []shipment.TransportMode{
			shipment.ModeRoRo,
			shipment.ModeFCL,
			shipment.ModeLCL,
			shipment.ModeAir,
			shipment.ModeDocuments,
			shipment.ModeGeneral,
		} {
			parsed, err := shipment.ModeFromString(mode.String())
			require.NoError(t, err)
			assert.Equal(t, mode, parsed)
		}
	})

	t.Run("should match case-insensitively", func(t *testing.T) {
		parsed, err := shipment.ModeFromString("roro")
		require.NoError(t, err)
		assert.Equal(t, shipment.ModeRoRo, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "Rail"} {
			_, err := shipment.ModeFromString(name)
			require.Error(t, err, "name %q should be rejected", name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
