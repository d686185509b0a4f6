package listing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmint/marketapi/domain"
)

func TestOptionsToKeyRoundTrip(t *testing.T) {
	req := require.New(t)

	seller := domain.Address("seller")
	options, err := GetFindAllOptions(
		WithSeller(seller),
		WithIsActive(true),
		WithStatus(StatusActive),
		WithCursor("10", 5),
	)
	req.NoError(err)

	key := OptionsToKey(options)

	parsedOpts, err := ParseKeyToOptions(key)
	req.NoError(err)

	parsed, err := GetFindAllOptions(parsedOpts...)
	req.NoError(err)
	req.Equal(seller, *parsed.Seller)
	req.True(*parsed.IsActive)
	req.Equal(StatusActive, *parsed.Status)

	// pagination never leaks into the snapshot key
	req.Nil(parsed.Cursor)
	req.Nil(parsed.Size)
}

func TestOptionsToKeyIgnoresCursor(t *testing.T) {
	req := require.New(t)

	base, err := GetFindAllOptions(WithIsActive(true))
	req.NoError(err)
	paged, err := GetFindAllOptions(WithIsActive(true), WithCursor("30", 10))
	req.NoError(err)

	req.Equal(OptionsToKey(base), OptionsToKey(paged))
}
