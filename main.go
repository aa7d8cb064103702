package main

// Demo: evaluate the example specifications under each smoothing strategy
// and report how the approximations bracket the exact robustness.

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rfielding/stl-robust/stl"
)

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()

	const T = 100
	speed := CreateCruiseSignal(T)
	spec := CreateSpeedEnvelopeExample()

	logger.Infow("speed envelope specification", "formula", fmt.Sprint(spec))
	fmt.Println(stl.RenderDOT(spec))

	timeCfg := stl.EvalConfig{Dim: 0, KeepDim: false, Method: stl.ApproxExact, Temperature: 1.0}

	for _, method := range []stl.ApproxMethod{stl.ApproxExact, stl.ApproxSoftmax, stl.ApproxLogSumExp} {
		temps := []float64{1, 5, 50}
		if method == stl.ApproxExact {
			temps = []float64{1} // temperature unused
		}
		for _, temp := range temps {
			cfg := stl.EvalConfig{Dim: 0, KeepDim: false, Method: method, Temperature: temp}
			if err := cfg.Validate(); err != nil {
				logger.Fatalw("invalid configuration", "error", err)
			}

			rob, err := spec.Robustness(stl.Trace{Tensor: speed}, cfg)
			if err != nil {
				logger.Fatalw("robustness evaluation failed", "error", err)
			}
			// Worst case over the horizon: "always in envelope".
			always, err := stl.Minish(rob, cfg)
			if err != nil {
				logger.Fatalw("time reduction failed", "error", err)
			}
			v, err := always.Item()
			if err != nil {
				logger.Fatalw("expected scalar robustness", "error", err)
			}
			logger.Infow("always-in-envelope robustness",
				"method", method, "temperature", temp, "value", v)
		}
	}

	// Windowed eventually: weight the robustness trace with a smooth mask
	// over the middle half of the horizon, then take the smoothed max.
	rob, err := spec.Robustness(stl.Trace{Tensor: speed}, timeCfg)
	if err != nil {
		logger.Fatalw("robustness evaluation failed", "error", err)
	}
	mask := stl.SmoothMask(T, 0.25, 0.75, 50)
	windowed, err := rob.Mul(mask)
	if err != nil {
		logger.Fatalw("mask application failed", "error", err)
	}
	eventually, err := stl.Maxish(windowed, timeCfg)
	if err != nil {
		logger.Fatalw("time reduction failed", "error", err)
	}
	ev, err := eventually.Item()
	if err != nil {
		logger.Fatalw("expected scalar robustness", "error", err)
	}
	logger.Infow("eventually-in-window robustness", "value", ev)

	// Joint two-signal specification: the Pair routes the altitude trace
	// to the first subformula and the speed trace to the second.
	alt := CreateClimbSignal(T)
	joint := CreateJointSpecExample()
	logger.Infow("joint specification", "formula", fmt.Sprint(joint))

	sig := stl.Pair{First: stl.Trace{Tensor: alt}, Second: stl.Trace{Tensor: speed}}
	channels, err := stl.SeparateAnd(joint, sig, stl.DefaultConfig())
	if err != nil {
		logger.Fatalw("channel separation failed", "error", err)
	}
	logger.Infow("joint spec channels", "shape", channels.Shape())

	jointRob, err := joint.Robustness(sig, timeCfg)
	if err != nil {
		logger.Fatalw("joint robustness failed", "error", err)
	}
	worst, err := stl.Minish(jointRob, timeCfg)
	if err != nil {
		logger.Fatalw("time reduction failed", "error", err)
	}
	jv, err := worst.Item()
	if err != nil {
		logger.Fatalw("expected scalar robustness", "error", err)
	}
	logger.Infow("joint spec robustness", "value", jv, "satisfied", jv > 0)
}
