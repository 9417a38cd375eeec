// Package kernel contains shared value objects used across the domain model.
//
// GeoPoint represents a validated geographic coordinate in floating-point
// degrees. Polygon represents a closed ring of GeoPoints and answers
// containment questions with the standard ray-casting (even-odd) test.
// Both are immutable value objects that must be created through their
// constructors; zero values fail validation.
package kernel
