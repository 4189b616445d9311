package twolevel

// Channel identifies a glueball channel by its J^PC quantum numbers.
type Channel string

const (
	// ChannelScalar is the scalar glueball channel.
	ChannelScalar Channel = "0++"
	// ChannelPseudoscalar is the pseudoscalar glueball channel.
	ChannelPseudoscalar Channel = "0-+"
)

// Effective glueball masses in lattice units. These stand in for the
// physical spectrum and are fixed model constants, not fit results.
const (
	massScalar       = 0.5
	massPseudoscalar = 0.7
)

var effectiveMass = map[Channel]float64{
	ChannelScalar:       massScalar,
	ChannelPseudoscalar: massPseudoscalar,
}
