// ctrlplot exercises the control library end to end and prints
// space-separated sample columns to stdout -- the same shape of
// output the teacher's harness tools (gen_packets, ttcalc) parse or
// emit for downstream plotting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/doismellburning/ctrlcore/cheby"
	"github.com/doismellburning/ctrlcore/filter"
	"github.com/doismellburning/ctrlcore/modulate/svm"
	"github.com/doismellburning/ctrlcore/numeric/unit"
	"github.com/doismellburning/ctrlcore/osc"
	"github.com/doismellburning/ctrlcore/pid"
)

func main() {
	samples := pflag.IntP("samples", "n", 200, "number of samples to print")
	dt := pflag.Float64P("dt", "d", 0.001, "sample period in seconds")
	freq := pflag.Float64P("freq", "f", 50.0, "oscillator frequency in Hz")
	alpha := pflag.Float64P("alpha", "a", 0.5, "EMA alpha")
	kp := pflag.Float64P("p", "p", 0.125, "PID proportional gain")
	windowed := pflag.Bool("windowed", false, "build the sin evaluator from windowed samples instead of Chebyshev-Gauss nodes")
	help := pflag.BoolP("help", "h", false, "display help text")

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "ctrlplot: print columns of filter/PID/SVM samples for plotting")
		fmt.Fprintln(os.Stderr)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	emaParam, err := filter.EMAFromAlpha(*alpha)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ctrlplot:", err)
		os.Exit(1)
	}
	var emaState filter.EMAState

	poParam := pid.MakePO(*kp)

	oscParam, err := osc.MakeParam[unit.Rev](*dt, *freq)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ctrlplot:", err)
		os.Exit(1)
	}
	var oscState osc.State

	sinFn := cheby.SinN(5)
	if *windowed {
		sinFn = cheby.SinNSampled(5, 64, cheby.WindowHamming)
	}

	for i := 0; i < *samples; i++ {
		x := 1.0
		filtered := filter.EMAApply(emaParam, &emaState, x)
		controlled := pid.ApplyPO(poParam, filtered)
		phi := osc.Apply(oscParam, &oscState)
		phases := svm.Apply(phi, sinFn)

		fmt.Printf("%g %g %g %g %g %g\n", filtered, controlled, phi, phases[0], phases[1], phases[2])
	}
}
