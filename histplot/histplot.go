package histplot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SmoothWindow is the moving-average window applied to plotted bins.
const SmoothWindow = 5

// ErrNoHistograms indicates an empty histogram set was submitted.
var ErrNoHistograms = errors.New("histplot: no histograms to export")

var unsafeChars = regexp.MustCompile(`[^\w\-_\. ]`)

// SanitizeName strips characters that are not word characters, dashes,
// underscores, dots or spaces, making an attribute name safe as a file
// name stem.
func SanitizeName(name string) string {
	return unsafeChars.ReplaceAllString(name, "")
}

// Smooth returns the centered uniform moving average of x with the given
// window. Borders are reflected (…, x[1], x[0] | x[0], x[1], …), so the
// output length equals the input length. window < 2 returns a copy.
func Smooth(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	if window < 2 {
		copy(out, x)
		return out
	}
	n := len(x)
	left := window / 2
	for i := range x {
		var sum float64
		for off := -left; off < window-left; off++ {
			sum += x[reflect(i+off, n)]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// reflect maps an out-of-range index back into [0,n) by mirroring at the
// borders.
func reflect(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -1 - i
		}
		if i >= n {
			i = 2*n - 1 - i
		}
	}
	return i
}

// Export writes one PNG per attribute into dir (created if missing).
// classHists is indexed [class][attribute] → density bins; every class
// is drawn as one smoothed line over the bin axis, labeled "Class <t>".
// The file name is SanitizeName(attribute) + ".png".
func Export(dir string, attrNames []string, classHists [][][]float64) error {
	if len(classHists) == 0 || len(attrNames) == 0 {
		return ErrNoHistograms
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("histplot: create %s: %w", dir, err)
	}

	for attr, name := range attrNames {
		p := plot.New()
		p.Title.Text = name
		p.X.Label.Text = "bin"
		p.Y.Label.Text = "density"

		for class, hists := range classHists {
			smoothed := Smooth(hists[attr], SmoothWindow)
			xys := make(plotter.XYs, len(smoothed))
			for i, v := range smoothed {
				xys[i].X = float64(i)
				xys[i].Y = v
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return fmt.Errorf("histplot: line for %q class %d: %w", name, class, err)
			}
			line.Color = plotutil.Color(class)
			p.Add(line)
			p.Legend.Add(fmt.Sprintf("Class %d", class), line)
		}

		path := filepath.Join(dir, SanitizeName(name)+".png")
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return fmt.Errorf("histplot: save %s: %w", path, err)
		}
	}
	return nil
}
