package game

// animateStars advances the decorative flicker: opacity moves by delta and
// the delta sign flips once opacity leaves [0.2, 1.0]. Opacity itself is not
// clamped, so a frame can overshoot slightly before reversing. Purely
// cosmetic; nothing else reads star state.
func animateStars(stars []Star) {
	for i := range stars {
		st := &stars[i]
		st.Opacity += st.Delta
		if st.Opacity <= 0.2 || st.Opacity >= 1.0 {
			st.Delta = -st.Delta
		}
	}
}
