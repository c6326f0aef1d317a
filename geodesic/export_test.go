package geodesic

// RandomInputs exposes the seeded input generator to the external tests.
var RandomInputs = randomInputs
