package domain

import "fmt"

// Aperture is an objective-aperture half-angle in milliradians. The dataset
// carries one plural-scattering column per aperture.
type Aperture int

const (
	Aperture5  Aperture = 5
	Aperture10 Aperture = 10
	Aperture15 Aperture = 15
)

// Apertures returns the supported apertures in ascending order. Every stage
// that iterates apertures must use this order.
func Apertures() []Aperture {
	return []Aperture{Aperture5, Aperture10, Aperture15}
}

// IsValid checks if the aperture is one of the tabulated half-angles.
func (a Aperture) IsValid() bool {
	return a == Aperture5 || a == Aperture10 || a == Aperture15
}

func (a Aperture) String() string {
	return fmt.Sprintf("%d mrad", int(a))
}
