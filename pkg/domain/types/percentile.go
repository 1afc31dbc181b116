package types

// PercentileKey is one of the five points of a scenario cost distribution
type PercentileKey string

const (
	P5     PercentileKey = "5th"
	P25    PercentileKey = "25th"
	Median PercentileKey = "Median"
	P75    PercentileKey = "75th"
	P95    PercentileKey = "95th"
)

// AllPercentileKeys returns the keys in ascending order
func AllPercentileKeys() []PercentileKey {
	return []PercentileKey{P5, P25, Median, P75, P95}
}

// String returns the string representation of the key
func (k PercentileKey) String() string {
	return string(k)
}
