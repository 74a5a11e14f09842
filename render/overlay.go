package render

// Overlay appends lines of small text stacked from the top-left corner
func Overlay(dst []Command, texts TextProvider, lines []string) ([]Command, error) {
	var y int32 = 4
	for _, line := range lines {
		h, err := texts.Text(line, FontSmall, RgbOverlay)
		if err != nil {
			return dst, err
		}
		dst = append(dst, textAt(h, 4, y))
		y += h.Height
	}
	return dst, nil
}
