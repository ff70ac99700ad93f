package xrand

//go:generate stringer -type=errGeneric -linecomment -output stringers.go .

type errGeneric uint8

// Errors returned by generator constructors. They perform no allocations.
const (
	_           errGeneric = iota // non-initialized err
	ErrZeroSeed                   // zero seed
	ErrSeedSize                   // bad seed length
)

func (err errGeneric) Error() string {
	return err.String()
}
