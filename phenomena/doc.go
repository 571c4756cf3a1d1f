// SPDX-License-Identifier: MIT

// Package phenomena models Rayleigh scattering in the Earth's atmosphere
// after Bodhaine et al. (1999): air refraction index, King correction
// factor, molecular density, gravity and the resulting optical depth.
//
// Units follow the source papers. Wavelengths are in micrometres for the
// refraction index and depolarisation kernels and in centimetres for the
// cross-section and optical depth; RayleighScatteringSPD takes a shape in
// nanometres. CO₂ concentrations are in parts per million.
package phenomena
