//go:build !linux

package main

import "fmt"

type pwmGPIO struct{}

func openPWMGPIO(chip string, offsetA, offsetB int) (*pwmGPIO, error) {
	return nil, fmt.Errorf("ctrlbench: -pwm-gpio requires linux (go-gpiocdev is a character-device API)")
}

func (g *pwmGPIO) close() {}

func (g *pwmGPIO) driveSVMPSCDemo(samples int, dt, freq float64) error {
	return fmt.Errorf("ctrlbench: -pwm-gpio requires linux")
}
