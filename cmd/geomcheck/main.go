// Command geomcheck validates a YAML transform document and prints every
// transform it builds. With -point it also projects that object-space point
// through each transform, read as a projection matrix, into -viewport.
//
//	geomcheck -f scene.yaml
//	geomcheck -eps 1e-3 < scene.yaml
//	geomcheck -point 0,0,-5 -viewport 0,0,800,600 -depth zo < scene.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/xformdoc"
)

var errInvalid = errors.New("document has invalid transforms")

// depthFlags maps -depth values to clip depth conventions.
var depthFlags = map[string]geom.DepthConvention{
	"no": geom.DepthNegOneToOne,
	"zo": geom.DepthZeroToOne,
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "geomcheck: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("geomcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "", "transform document (default: stdin)")
	eps := fs.Float64("eps", float64(geom.DefaultEpsilon), "tolerance for the affine check")
	verbose := fs.Bool("v", false, "debug logging")
	point := fs.String("point", "", "object-space point x,y,z to project (default: none)")
	vpFlag := fs.String("viewport", "0,0,1,1", "viewport x,y,width,height")
	depthFlag := fs.String("depth", "no", "clip depth range: no ([-1,1]) or zo ([0,1])")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *eps < 0 {
		return fmt.Errorf("-eps must be non-negative, got %g", *eps)
	}
	depth, ok := depthFlags[*depthFlag]
	if !ok {
		return fmt.Errorf("-depth must be no or zo, got %q", *depthFlag)
	}
	var (
		p  geom.Vec3
		vp geom.Vec4
	)
	if *point != "" {
		if err := parseScalars(*point, p[:]); err != nil {
			return fmt.Errorf("-point: %w", err)
		}
	}
	if err := parseScalars(*vpFlag, vp[:]); err != nil {
		return fmt.Errorf("-viewport: %w", err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var (
		doc xformdoc.Document
		err error
	)
	if *file == "" {
		doc, err = xformdoc.Load(stdin)
	} else {
		doc, err = xformdoc.LoadFile(*file)
	}
	if err != nil {
		return err
	}
	logger.Debug("document loaded", "version", doc.Version, "transforms", len(doc.Transforms))

	failed := 0
	for _, r := range xformdoc.Check(doc, geom.WithEpsilon(geom.Scalar(*eps))) {
		if !r.OK() {
			failed++
			logger.Error("invalid transform", "name", r.Name, "err", r.Err)
			continue
		}
		logger.Debug("transform ok", "name", r.Name, "affine", r.Matrix.IsAffine())
		if *point == "" {
			fmt.Fprintf(stdout, "%s:\n%s\n", r.Name, r.Matrix)
			continue
		}
		win := p.ProjectedWith(geom.Identity4(), r.Matrix, vp, geom.WithDepthConvention(depth))
		fmt.Fprintf(stdout, "%s -> %s\n", r.Name, win)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(doc.Transforms), errInvalid)
	}

	return nil
}

// parseScalars fills dst from a comma-separated list of exactly len(dst)
// numbers.
func parseScalars(s string, dst []geom.Scalar) error {
	fields := strings.Split(s, ",")
	if len(fields) != len(dst) {
		return fmt.Errorf("want %d comma-separated values, got %d", len(dst), len(fields))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return err
		}
		dst[i] = geom.Scalar(x)
	}

	return nil
}
