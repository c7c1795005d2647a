// Package stream models process streams: flowing mixtures at a
// temperature and pressure with molar composition.
//
// A [Stream] is a value object built through [New], which validates the
// conditions and composition and takes defensive copies of the component
// and fraction maps. Derived quantities (mass flow, mass fractions, ideal
// gas density and enthalpy) are computed on demand; [Stream.Mix] and
// [Stream.Split] implement the material balance for merging and dividing
// streams and return new values.
//
// Units follow engineering convention throughout: K, Pa, kmol/s, kg/s.
package stream
