package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cadwerk/region"
	"github.com/tdewolff/argp"
)

// Regions are stored as JSON nested arrays: [[[x,y],...],...], one array of
// [x,y] pairs per contour.

type Union struct {
	Eps    float64 `short:"e" default:"1e-9" desc:"Coordinate tolerance"`
	Output string  `short:"o" desc:"Output file, stdout if omitted"`
	A      string  `index:"0" desc:"First region file"`
	B      string  `index:"1" desc:"Second region file"`
}

type Intersection struct {
	Eps    float64 `short:"e" default:"1e-9" desc:"Coordinate tolerance"`
	Output string  `short:"o" desc:"Output file, stdout if omitted"`
	A      string  `index:"0" desc:"First region file"`
	B      string  `index:"1" desc:"Second region file"`
}

type Difference struct {
	Eps    float64 `short:"e" default:"1e-9" desc:"Coordinate tolerance"`
	Output string  `short:"o" desc:"Output file, stdout if omitted"`
	A      string  `index:"0" desc:"First region file"`
	B      string  `index:"1" desc:"Second region file"`
}

type Xor struct {
	Eps    float64 `short:"e" default:"1e-9" desc:"Coordinate tolerance"`
	Output string  `short:"o" desc:"Output file, stdout if omitted"`
	A      string  `index:"0" desc:"First region file"`
	B      string  `index:"1" desc:"Second region file"`
}

type Settle struct {
	Eps      float64 `short:"e" default:"1e-9" desc:"Coordinate tolerance"`
	FillRule string  `short:"f" default:"evenodd" desc:"Fill rule: evenodd or nonzero"`
	Output   string  `short:"o" desc:"Output file, stdout if omitted"`
	Input    string  `index:"0" desc:"Region file"`
}

type Area struct {
	Eps   float64 `short:"e" default:"1e-9" desc:"Coordinate tolerance"`
	Input string  `index:"0" desc:"Region file"`
}

func main() {
	root := argp.New("Polygon region boolean toolkit")
	root.AddCmd(&Union{}, "union", "Area covered by either region")
	root.AddCmd(&Intersection{}, "intersection", "Area covered by both regions")
	root.AddCmd(&Difference{}, "difference", "Area of the first region not covered by the second")
	root.AddCmd(&Xor{}, "xor", "Area covered by exactly one region")
	root.AddCmd(&Settle{}, "settle", "Resolve overlapping contours into disjoint ones")
	root.AddCmd(&Area{}, "area", "Signed area of a region")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Union) Run() error {
	return binaryOp(region.Union, cmd.A, cmd.B, cmd.Output, cmd.Eps)
}

func (cmd *Intersection) Run() error {
	return binaryOp(region.Intersection, cmd.A, cmd.B, cmd.Output, cmd.Eps)
}

func (cmd *Difference) Run() error {
	return binaryOp(region.Difference, cmd.A, cmd.B, cmd.Output, cmd.Eps)
}

func (cmd *Xor) Run() error {
	return binaryOp(region.ExclusiveOr, cmd.A, cmd.B, cmd.Output, cmd.Eps)
}

func (cmd *Settle) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	var fillRule region.FillRule
	switch cmd.FillRule {
	case "evenodd":
		fillRule = region.EvenOdd
	case "nonzero":
		fillRule = region.NonZero
	default:
		return fmt.Errorf("unknown fill rule %q", cmd.FillRule)
	}
	r, err := readRegion(cmd.Input)
	if err != nil {
		return err
	}
	if r, err = region.Settle(r, fillRule, cmd.Eps); err != nil {
		return err
	}
	return writeRegion(cmd.Output, r)
}

func (cmd *Area) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	r, err := readRegion(cmd.Input)
	if err != nil {
		return err
	}
	if err := r.Validate(cmd.Eps); err != nil {
		return err
	}
	fmt.Println(r.Area())
	return nil
}

func binaryOp(op func(a, b region.Region, eps float64) (region.Region, error), aFile, bFile, outFile string, eps float64) error {
	if aFile == "" || bFile == "" {
		return argp.ShowUsage
	}
	a, err := readRegion(aFile)
	if err != nil {
		return err
	}
	b, err := readRegion(bFile)
	if err != nil {
		return err
	}
	r, err := op(a, b, eps)
	if err != nil {
		return err
	}
	return writeRegion(outFile, r)
}

func readRegion(filename string) (region.Region, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var coords [][][2]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	r := make(region.Region, len(coords))
	for i, contour := range coords {
		r[i] = make(region.Contour, len(contour))
		for j, p := range contour {
			r[i][j] = region.Point{X: p[0], Y: p[1]}
		}
	}
	return r, nil
}

func writeRegion(filename string, r region.Region) error {
	coords := make([][][2]float64, len(r))
	for i, contour := range r {
		coords[i] = make([][2]float64, len(contour))
		for j, p := range contour {
			coords[i][j] = [2]float64{p.X, p.Y}
		}
	}
	data, err := json.Marshal(coords)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if filename == "" || filename == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
