package layout

import "image"

// Box converts inclusive corner coordinates, where (x1,y1) is the last
// covered pixel, into an image.Rectangle with exclusive Max.
func Box(x0, y0, x1, y1 int) image.Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1+1, y1+1)}
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Grid returns the cells of size (cellW,cellH) that fit completely in rect,
// row-major from the top-left.
func Grid(rect image.Rectangle, cellW, cellH int) []image.Rectangle {
	rect = Normalize(rect)
	if cellW <= 0 || cellH <= 0 {
		return nil
	}
	cols := rect.Dx() / cellW
	rows := rect.Dy() / cellH
	cells := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			minX := rect.Min.X + col*cellW
			minY := rect.Min.Y + row*cellH
			cells = append(cells, image.Rect(minX, minY, minX+cellW, minY+cellH))
		}
	}
	return cells
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed in the top-left of rect.
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxW := rect.Dx()
	maxH := rect.Dy()
	if widthPx > maxW {
		widthPx = maxW
	}
	if heightPx > maxH {
		heightPx = maxH
	}
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// FitSquare returns the largest square that fits into rect, anchored at the top-left.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	if size < 0 {
		size = 0
	}
	return AnchorTopLeft(rect, size, size)
}

// CenterIn returns a rectangle of the given size centered on rect.
// The result may extend past rect when size is larger.
func CenterIn(rect image.Rectangle, size image.Point) image.Rectangle {
	rect = Normalize(rect)
	minX := rect.Min.X + (rect.Dx()-size.X)/2
	minY := rect.Min.Y + (rect.Dy()-size.Y)/2
	return image.Rect(minX, minY, minX+size.X, minY+size.Y)
}

// Fit returns the largest rectangle with the aspect ratio of size that fits
// in rect, centered on it.
func Fit(rect image.Rectangle, size image.Point) image.Rectangle {
	rect = Normalize(rect)
	if size.X <= 0 || size.Y <= 0 {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	w, h := rect.Dx(), size.Y*rect.Dx()/size.X
	if h > rect.Dy() {
		w, h = size.X*rect.Dy()/size.Y, rect.Dy()
	}
	return CenterIn(rect, image.Pt(w, h))
}
