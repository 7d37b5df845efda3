package parameter

// Sonar
const (
	// SonarRayCount is the number of rays per ping, evenly spaced around the hull
	SonarRayCount = 32

	// SonarSpeedOfSound is pulse propagation speed (cells/s)
	SonarSpeedOfSound = 100.0

	// SonarAttenuationPerCell is one-way path loss (dB/cell)
	SonarAttenuationPerCell = 0.5
)
