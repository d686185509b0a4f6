package pricefomatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayAmount(t *testing.T) {
	req := require.New(t)

	req.Equal("0", DisplayAmount(0))
	req.Equal("0.000000001", DisplayAmount(1))
	req.Equal("1", DisplayAmount(1_000_000_000))
	req.Equal("1.5", DisplayAmount(1_500_000_000))
	req.Equal("18446744073.709551615", DisplayAmount(math.MaxUint64))
}

func TestFormatAmount(t *testing.T) {
	req := require.New(t)

	req.True(FormatAmount(2_500_000_000).Equal(FormatAmount(2_000_000_000).Add(FormatAmount(500_000_000))))
}
