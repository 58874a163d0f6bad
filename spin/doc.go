// Package spin computes centrifugation parameters for extracellular-vesicle
// isolation: sedimentation kinetics, pelleting fractions, cut-off diameters,
// rotor K-factors, and multi-step protocol tracking. The formulas follow
// Livshts et al., Sci. Rep. 5, 17319 (2015), with the supplement-derived
// corrections (cosine path length, elliptical fixed-angle pelleting, RCF
// referenced at the average radius).
//
// # Reading Guide
//
// Start with these three files to understand the model:
//   - rotor.go: Geometry resolution for swinging-bucket and fixed-angle rotors
//   - sedimentation.go: Sedimentation coefficient, cut-off diameter, pelleted fraction
//   - protocol.go: Sequential multi-step protocol simulation
//
// Supporting pieces:
//   - units.go: RPM / RCF / angular-velocity conversions
//   - kfactor.go: Rotor clearing efficiency and run-time conversion
//   - presets.go: The eight-rotor catalog from manuscript Table 1
//   - manuscript.go: Literal Table 2/3 reference values used as the
//     regression oracle
//
// All internal computation is in CGS units (cm, g, s); the public API takes
// and returns conventional units (nm, mm, cP, minutes or seconds) with
// conversion at the boundary. Every function here is pure: validation happens
// when a Geometry, Medium, or Conditions value is constructed, and the
// physics functions assume pre-validated inputs.
package spin
