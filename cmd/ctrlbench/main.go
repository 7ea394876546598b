// ctrlbench loads a YAML scenario file and runs a closed control loop
// for N ticks, logging scenario progress with charmbracelet/log -- the
// same structured-logging library the teacher carries in go.mod.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/golang/geo/s1"
	"github.com/spf13/pflag"

	"github.com/doismellburning/ctrlcore/filter"
	"github.com/doismellburning/ctrlcore/pid"
	"github.com/doismellburning/ctrlcore/plant/dcm"
	"github.com/doismellburning/ctrlcore/plant/heater"
)

func main() {
	scenarioPath := pflag.StringP("scenario", "s", "", "path to a YAML scenario file")
	quiet := pflag.BoolP("quiet", "q", false, "suppress per-tick logging")
	pwmGPIOChip := pflag.String("pwm-gpio", "", "gpiochip device to key with the SVM+PSC demo (e.g. gpiochip0), linux only")
	pwmGPIOOffsetA := pflag.Int("pwm-gpio-a", 0, "line offset for the PSC i_a output")
	pwmGPIOOffsetB := pflag.Int("pwm-gpio-b", 1, "line offset for the PSC i_b output")
	help := pflag.BoolP("help", "h", false, "display help text")

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "ctrlbench: run a closed control loop from a YAML scenario file")
		fmt.Fprintln(os.Stderr)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help || *scenarioPath == "" {
		pflag.Usage()
		if *scenarioPath == "" {
			os.Exit(1)
		}
		return
	}

	logger := log.New(os.Stderr)

	sc, err := LoadScenario(*scenarioPath)
	if err != nil {
		logger.Fatal("failed to load scenario", "err", err)
	}

	logger.Info("scenario loaded", "plant", sc.Plant, "samples", sc.Samples, "dt", sc.Dt)

	if *pwmGPIOChip != "" {
		gpio, err := openPWMGPIO(*pwmGPIOChip, *pwmGPIOOffsetA, *pwmGPIOOffsetB)
		if err != nil {
			logger.Fatal("failed to open pwm gpio", "err", err)
		}
		defer gpio.close()
		if err := gpio.driveSVMPSCDemo(sc.Samples, sc.Dt, 50); err != nil {
			logger.Fatal("pwm gpio demo failed", "err", err)
		}
		logger.Info("pwm gpio demo complete", "chip", *pwmGPIOChip)
	}

	regulator := buildRegulator(sc)

	var emaState filter.EMAState
	var emaParam filter.EMAParam
	useEMA := sc.EMA != nil
	if useEMA {
		emaParam, err = filter.EMAFromAlpha(sc.EMA.Alpha)
		if err != nil {
			logger.Fatal("failed to build EMA filter", "err", err)
		}
	}

	var lqeState filter.LQEState
	var lqeParam filter.LQEParam
	useLQE := sc.LQE != nil
	if useLQE {
		lqeParam, err = filter.MakeLQEParam(sc.LQE.F, sc.LQE.H, sc.LQE.Q, sc.LQE.R)
		if err != nil {
			logger.Fatal("failed to build LQE filter", "err", err)
		}
	}

	runPlant := buildPlantStep(sc)
	if runPlant == nil {
		logger.Fatal("failed to build plant", "plant", sc.Plant)
	}

	var measured float64
	for i := 0; i < sc.Samples; i++ {
		filtered := measured
		if useEMA {
			filtered = filter.EMAApply(emaParam, &emaState, measured)
		} else if useLQE {
			filtered = filter.ApplyLQE(lqeParam, &lqeState, measured)
		}

		errVal := sc.Setpoint - filtered
		u := regulator(errVal)
		measured = runPlant(u, sc.Dt)

		if !*quiet {
			logger.Info("tick",
				"i", i,
				"measured", measured,
				"error", errVal,
				"u", u,
				"error_as_angle", s1.Angle(errVal).Radians(),
			)
		}
	}

	logger.Info("scenario complete", "final_measured", measured)
}

// buildRegulator constructs the narrowest pid shape the scenario's
// PID block names -- PO, PI, PD, or PID -- and binds it to a fresh
// State via pid.Bind*, per pid/regulator.go's uniform Regulator shape.
func buildRegulator(sc Scenario) pid.Regulator {
	po := pid.MakePO(sc.PID.P)

	switch {
	case sc.PID.I != nil && sc.PID.D != nil:
		full := po.WithI(*sc.PID.I).WithD(*sc.PID.D)
		state := &pid.StatePID{}
		return pid.BindPID(full, state)
	case sc.PID.I != nil:
		pi := po.WithI(*sc.PID.I)
		state := &pid.StateI{}
		return pid.BindPI(pi, state)
	case sc.PID.D != nil:
		pd := po.WithD(*sc.PID.D)
		state := &pid.StateD{}
		return pid.BindPD(pd, state)
	default:
		return pid.BindPO(po)
	}
}

// buildPlantStep closes over a fresh plant State and returns a
// step function of (u, dt) -> measured, per the scenario's chosen
// plant.
func buildPlantStep(sc Scenario) func(u, dt float64) float64 {
	switch sc.Plant {
	case "dcm":
		p, err := dcm.MakeParam(sc.DCM.R, sc.DCM.L, sc.DCM.K, sc.DCM.J)
		if err != nil {
			return nil
		}
		state := &dcm.State{}
		return func(u, dt float64) float64 {
			dcm.Step(p, state, u, 0, dt)
			return state.Wr
		}
	case "heater":
		p, err := heater.MakeParam(sc.Heater.C, sc.Heater.Mass, sc.Heater.RTh, sc.Heater.TEnv)
		if err != nil {
			return nil
		}
		state := &heater.State{T: sc.Heater.TEnv}
		return func(u, dt float64) float64 {
			heater.Step(p, state, u, dt)
			return state.T
		}
	default:
		return nil
	}
}
