// Package convert drives one canonical-map-to-target-map conversion: it
// resolves every mapping entry in declaration order and accumulates the
// results into a target map through a builder it owns exclusively for the
// duration of the conversion.
package convert
