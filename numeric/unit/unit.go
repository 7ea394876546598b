// Package unit implements compile-time physical-unit tagging for
// scalar values: a Quantity[U] pairs a raw float64 with a phantom
// marker type U that carries a class and a scale relative to that
// class's canonical unit.
//
// Go has no value-generics and no operator overloading, so the "+ and
// - require identical unit" rule becomes: Add and Sub are free
// functions generic over a single Unit type parameter, which the
// compiler already refuses to unify across two different marker
// types. That is the part of spec 4.2 enforceable at compile time in
// Go; explicit conversions, which need two distinct type parameters,
// are checked at the call (see ConvertTo). Class-algebra products are
// separate named functions with fixed unit types (see algebra.go).
package unit

import "fmt"

// Class names the physical dimension a Unit belongs to.
type Class string

const (
	ClassDimensionless    Class = "dimensionless"
	ClassLength           Class = "length"
	ClassTime             Class = "time"
	ClassAngle            Class = "angle"
	ClassFrequency        Class = "frequency"
	ClassVoltage          Class = "voltage"
	ClassCurrent          Class = "current"
	ClassPower            Class = "power"
	ClassResistance       Class = "resistance"
	ClassInductance       Class = "inductance"
	ClassCapacitance      Class = "capacitance"
	ClassMagneticFlux     Class = "magnetic_flux"
	ClassMomentOfInertia  Class = "moment_of_inertia"
	ClassMass             Class = "mass"
	ClassTemperature      Class = "temperature"
	ClassHeatCapacity     Class = "heat_capacity"
	ClassThermalResist    Class = "thermal_resistance"
	ClassAngularVelocity  Class = "angular_velocity"
)

// Unit is implemented by zero-size marker types, one per concrete
// unit, e.g. Volt, MilliOhm, Rad, Deg.
type Unit interface {
	Scale() float64
	Class() Class
}

// Quantity is a raw scalar tagged, at the type level, with the unit it
// was measured in.
type Quantity[U Unit] struct {
	raw float64
}

// Of attaches unit U to a raw value -- spec 4.2's "as!Unit".
func Of[U Unit](raw float64) Quantity[U] {
	return Quantity[U]{raw: raw}
}

// Raw returns the tagged value in its own unit's scale.
func (q Quantity[U]) Raw() float64 { return q.raw }

// Canonical returns the value expressed in the class's canonical
// unit (scale 1), e.g. ohms rather than milliohms.
func (q Quantity[U]) Canonical() float64 {
	var u U
	return q.raw * u.Scale()
}

// Add requires identical unit types -- enforced by Go's generic
// instantiation, not a runtime check.
func Add[U Unit](a, b Quantity[U]) Quantity[U] {
	return Quantity[U]{raw: a.raw + b.raw}
}

// Sub requires identical unit types.
func Sub[U Unit](a, b Quantity[U]) Quantity[U] {
	return Quantity[U]{raw: a.raw - b.raw}
}

// Scale multiplies a quantity by a dimensionless float, preserving its
// unit.
func Scale[U Unit](a Quantity[U], k float64) Quantity[U] {
	return Quantity[U]{raw: a.raw * k}
}

// ConvertTo converts between two units of the same class -- spec
// 4.2's "to!Unit". Unlike Add/Sub, two distinct type parameters
// cannot be constrained to "same class" at compile time in Go, so
// this is the one conversion operation that checks at the call and
// returns an error on class mismatch, per spec 9's re-architecture
// notes for anything needing more than one free type parameter.
func ConvertTo[From, To Unit](q Quantity[From]) (Quantity[To], error) {
	var from From
	var to To
	if from.Class() != to.Class() {
		return Quantity[To]{}, fmt.Errorf("unit: cannot convert %s to %s: different classes", from.Class(), to.Class())
	}
	return Quantity[To]{raw: q.raw * from.Scale() / to.Scale()}, nil
}
