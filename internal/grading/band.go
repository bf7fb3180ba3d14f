package grading

// BandFor maps a rounded accuracy percentage to its mastery band.
// Boundaries are inclusive on the lower value.
func BandFor(accuracy int) Band {
	switch {
	case accuracy >= 90:
		return BandExcellent
	case accuracy >= 75:
		return BandStrong
	case accuracy >= 50:
		return BandDeveloping
	default:
		return BandNeedsFocus
	}
}
