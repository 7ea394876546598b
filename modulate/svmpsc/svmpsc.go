// Package svmpsc composes space-vector modulation with the
// phase-shift corrector: spec 4.9's "combined SVM+PSC", which runs
// SVM to get three duty cycles then feeds them through PSC so that
// measurement windows of at least t_crit exist between switching
// events, inheriting PSC's every-other-tick contract unchanged.
package svmpsc

import (
	"github.com/doismellburning/ctrlcore/cheby"
	"github.com/doismellburning/ctrlcore/modulate/svm"
	"github.com/doismellburning/ctrlcore/numeric/vec"
	"github.com/doismellburning/ctrlcore/psc"
)

// Param pairs an SVM sin evaluator with a PSC Param.
type Param struct {
	Sin cheby.TrigApprox
	PSC psc.Param
}

// State carries the PSC's mutable switching history; SVM itself is
// stateless (spec 4.9).
type State struct {
	PSC psc.State
}

// Apply runs SVM at angle phi to get duty cycles scaled to [0, 1]
// centered at 0.5 (SVM's raw output is in [-1, 1] around the zero
// vector), then passes them through PSC to get the two switch
// timestamps.
func Apply(p Param, s *State, phi float64) (ia, ib uint32) {
	duty := svm.Apply(phi, p.Sin)
	scaled := vec.New3(
		(duty[0]+1)/2,
		(duty[1]+1)/2,
		(duty[2]+1)/2,
	)
	return psc.Apply(p.PSC, &s.PSC, scaled)
}
