package layout

// redistributeSlack spreads the space left after padding, spacing and
// children over the dynamic padding (both ends) and dynamic spacing slots.
// restSize is the container size minus the children sizes. Nothing changes
// when there is no positive slack or no slot to put it in.
func redistributeSlack(padding, spacing float64, dynamicPadding, dynamicSpacing bool, restSize float64, childCount int) (float64, float64) {
	if childCount <= 0 {
		return padding, spacing
	}
	spaces := childCount - 1
	restSize -= padding*2.0 + spacing*float64(spaces)
	if restSize <= epsilon {
		return padding, spacing
	}
	if !dynamicPadding && !(dynamicSpacing && spaces > 0) {
		return padding, spacing
	}

	slots := 0
	if dynamicPadding {
		slots = 2
	}
	if dynamicSpacing {
		slots += spaces
	}
	if slots == 0 {
		return padding, spacing
	}

	delta := restSize / float64(slots)
	if dynamicPadding {
		padding += delta
	}
	if dynamicSpacing && spaces > 0 {
		spacing += delta
	}
	return padding, spacing
}
