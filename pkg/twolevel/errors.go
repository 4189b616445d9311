package twolevel

import "fmt"

// ConfigurationError reports a violated construction invariant: the active
// temporal window must be strictly larger than twice the frozen boundary
// thickness, otherwise the two frozen shells overlap and no active interior
// remains.
type ConfigurationError struct {
	ActiveWindow int
	Delta        int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"invalid two-level configuration: active window %d must exceed twice the frozen thickness (2*%d = %d)",
		e.ActiveWindow, e.Delta, 2*e.Delta)
}

// UnknownChannelError reports a correlator request for a channel outside the
// modeled glueball spectrum.
type UnknownChannelError struct {
	Channel Channel
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("unknown glueball channel %q (known channels: %q, %q)",
		string(e.Channel), string(ChannelScalar), string(ChannelPseudoscalar))
}
