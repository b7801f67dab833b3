package modes

// Mode selects environment dependent behaviors, such as whether the network proxy is used.
type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeTest
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeTest:
		return "test"
	}
	return "unknown"
}
