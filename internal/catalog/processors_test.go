package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionTypesSortedByCapacity(t *testing.T) {
	p := Processor{
		Name:   "H2",
		Series: SeriesH,
		MaxResolution: map[ConnectionType]int{
			ConnectionFiber: 26000000,
			ConnectionLAN:   13000000,
		},
	}
	conns := p.ConnectionTypes()
	require.Len(t, conns, 2)
	assert.Equal(t, ConnectionLAN, conns[0].Type)
	assert.Equal(t, ConnectionFiber, conns[1].Type)
	assert.Equal(t, 26000000, p.HighestCapacity())
}

func TestBestConnectionTypePicksSmallestSufficient(t *testing.T) {
	p := Processor{
		MaxResolution: map[ConnectionType]int{
			ConnectionLAN:      10400000,
			ConnectionEnhanced: 13000000,
		},
	}
	assert.Equal(t, ConnectionLAN, p.BestConnectionType(9000000).Type)
	assert.Equal(t, ConnectionEnhanced, p.BestConnectionType(12000000).Type)
	// Nothing covers it: fall back to the largest connection.
	assert.Equal(t, ConnectionEnhanced, p.BestConnectionType(99000000).Type)
}

func TestAvailableProcessorsTiering(t *testing.T) {
	// 3.5 Mpx fits VX600 (3.9M) and every H-series entry; the premium
	// tier must be suppressed because cheaper hardware suffices.
	available := AvailableProcessors(Processors, 3500000)
	require.NotEmpty(t, available)
	for _, p := range available {
		assert.NotEqual(t, SeriesH, p.Series, "H series must be suppressed when VX/TB suffice")
	}
	// Sorted ascending by ID.
	for i := 1; i < len(available); i++ {
		assert.Less(t, available[i-1].ID, available[i].ID)
	}
	assert.Equal(t, "VX600", available[0].Name)
}

func TestAvailableProcessorsPremiumOnlyWhenNecessary(t *testing.T) {
	// 20 Mpx exceeds every VX/TB entry but fits H2 fiber and above.
	available := AvailableProcessors(Processors, 20000000)
	require.NotEmpty(t, available)
	for _, p := range available {
		assert.Equal(t, SeriesH, p.Series)
	}
	assert.Equal(t, "H2", available[0].Name)
}

func TestRecommendStates(t *testing.T) {
	rec := Recommend(Processors, 0)
	assert.Equal(t, NotConfigured, rec.Status)
	assert.Equal(t, "", rec.String())

	rec = Recommend(Processors, 3500000)
	require.Equal(t, Found, rec.Status)
	assert.Equal(t, "VX600", rec.Processor.Name)
	assert.Equal(t, "VX600", rec.String())
	assert.Equal(t, ConnectionLAN, rec.Connection.Type)

	// Beyond every catalog entry's highest capacity.
	rec = Recommend(Processors, 200000000)
	assert.Equal(t, Incompatible, rec.Status)
	assert.Equal(t, "no compatible processor", rec.String())
	assert.Nil(t, rec.Processor)
}

func TestCurrentResolutionRoundsToNearest(t *testing.T) {
	spec := Ingest(ModelRecord{
		CabinetSize:       "640*480mm",
		CabinetResolution: "256x192",
	})

	// 1.5m / 0.64m = 2.34 rounds to 2, unlike the quote calculator
	// which rounds up to 3.
	res := CurrentResolution(spec, Dimensions{Width: 1.5, Height: 1.5})
	assert.Equal(t, 512, res.Width)
	// 1.5m / 0.48m = 3.125 rounds to 3.
	assert.Equal(t, 576, res.Height)
}

func TestCurrentResolutionUnconfigured(t *testing.T) {
	res := CurrentResolution(ModelSpec{}, Dimensions{Width: 2, Height: 2})
	assert.True(t, res.IsZero())
}
