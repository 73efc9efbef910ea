package slicon

import (
	"context"
	"log/slog"
	"os"

	"github.com/k1LoW/errors"
)

type CheckStatus string

const (
	CheckOK           CheckStatus = "ok"
	CheckMissing      CheckStatus = "missing"
	CheckInvalid      CheckStatus = "invalid"
	CheckSizeMismatch CheckStatus = "size mismatch"
	CheckStale        CheckStatus = "stale"
)

// CheckResult is the state of one icon on disk.
type CheckResult struct {
	Spec   IconSpec
	Status CheckStatus
	// Distance is the perceptual hash distance to a fresh render, or -1 when
	// no comparison was made.
	Distance int
	Err      error
}

func (r CheckResult) OK() bool {
	return r.Status == CheckOK
}

// Check compares every icon on disk with what Generate would write now.
func (g *Generator) Check(ctx context.Context) (_ []CheckResult, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var results []CheckResult
	for _, spec := range g.specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r := g.CheckIcon(spec)
		if r.OK() {
			g.logger.Info("verified icon", slog.String("path", spec.Path), slog.Int("distance", r.Distance))
		} else {
			g.logger.Warn("failed to verify icon", slog.String("path", spec.Path), slog.String("status", string(r.Status)))
		}
		results = append(results, r)
	}
	g.logger.Info("check completed", slog.Int("count", len(results)))
	return results, nil
}

// CheckIcon inspects the file of one spec.
func (g *Generator) CheckIcon(spec IconSpec) CheckResult {
	r := CheckResult{Spec: spec, Distance: -1}
	if _, err := os.Stat(spec.Path); err != nil {
		r.Err = err
		if os.IsNotExist(err) {
			r.Status = CheckMissing
		} else {
			r.Status = CheckInvalid
		}
		return r
	}
	got, err := NewImage(spec.Path)
	if err != nil {
		r.Status = CheckInvalid
		r.Err = err
		return r
	}
	if w, h := got.Size(); w != spec.Size || h != spec.Size {
		r.Status = CheckSizeMismatch
		return r
	}
	b, err := g.encode(spec.Size)
	if err != nil {
		r.Status = CheckInvalid
		r.Err = err
		return r
	}
	want, err := newImageFromBytes(b)
	if err != nil {
		r.Status = CheckInvalid
		r.Err = err
		return r
	}
	ok, distance := want.Equivalent(got)
	r.Distance = distance
	if !ok {
		r.Status = CheckStale
		return r
	}
	r.Status = CheckOK
	return r
}
