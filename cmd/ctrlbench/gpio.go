//go:build linux

// PWM-line driving via go-gpiocdev: the same "key a real line from a
// computed signal" role the teacher gives go-gpiocdev for PTT keying,
// here driving two GPIO lines from the SVM+PSC modulator's switch
// timestamps instead of from a transmit request.
package main

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/doismellburning/ctrlcore/cheby"
	"github.com/doismellburning/ctrlcore/modulate/svmpsc"
	"github.com/doismellburning/ctrlcore/numeric/unit"
	"github.com/doismellburning/ctrlcore/osc"
	"github.com/doismellburning/ctrlcore/psc"
)

// pwmGPIO holds the two output lines keyed by the modulator's
// switch-timestamp pair.
type pwmGPIO struct {
	lineA, lineB *gpiocdev.Line
}

// openPWMGPIO requests two output lines on chip for the svmpsc
// demonstration: lineA follows ia, lineB follows ib.
func openPWMGPIO(chip string, offsetA, offsetB int) (*pwmGPIO, error) {
	lineA, err := gpiocdev.RequestLine(chip, offsetA, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("ctrlbench: requesting gpio line %d: %w", offsetA, err)
	}
	lineB, err := gpiocdev.RequestLine(chip, offsetB, gpiocdev.AsOutput(0))
	if err != nil {
		lineA.Close()
		return nil, fmt.Errorf("ctrlbench: requesting gpio line %d: %w", offsetB, err)
	}
	return &pwmGPIO{lineA: lineA, lineB: lineB}, nil
}

func (g *pwmGPIO) close() {
	g.lineA.Close()
	g.lineB.Close()
}

// driveSVMPSCDemo runs a free-running oscillator through the SVM+PSC
// combo for samples ticks, setting lineA/lineB high whenever their
// switch count falls in the first half of the PWM period -- a
// demonstration of driving real output lines from the modulator's
// computed switch instants, not a cycle-accurate PWM driver.
func (g *pwmGPIO) driveSVMPSCDemo(samples int, dt, freq float64) error {
	oscParam, err := osc.MakeParam[unit.Rev](dt, freq)
	if err != nil {
		return err
	}
	var oscState osc.State

	pscParam, err := psc.MakeParam(1e-6, 1/dt)
	if err != nil {
		return err
	}

	p := svmpsc.Param{Sin: cheby.SinN(5), PSC: pscParam}
	var s svmpsc.State

	const half = 1 << 15 // half of psc's 1<<16 switch-count resolution
	for i := 0; i < samples; i++ {
		phi := osc.Apply(oscParam, &oscState)
		ia, ib := svmpsc.Apply(p, &s, phi)

		if err := g.lineA.SetValue(boolToInt(ia < half)); err != nil {
			return err
		}
		if err := g.lineB.SetValue(boolToInt(ib < half)); err != nil {
			return err
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
