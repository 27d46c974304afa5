package sim

import (
	"strconv"

	"lifeca/internal/config"
	"lifeca/internal/core"
	"lifeca/pkg/life"
)

// Describe captures the run settings and the board's live counters.
func Describe(cfg *config.Config, b *life.Board) core.ParameterSnapshot {
	size := b.Size()
	source := "random"
	switch {
	case cfg.InputPath != "":
		source = cfg.InputPath
	case cfg.Draw:
		source = "blank"
	}
	output := cfg.OutputPath
	if output == "" {
		output = "none"
	}

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				intParam("generation", "Generation", b.Generation()),
				intParam("population", "Population", b.Population()),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				stringParam("rules", "Rule", b.Rules().String()),
				intParam("tps", "Gen/s", cfg.TPS),
			},
		},
		{
			Name: "Files",
			Params: []core.Parameter{
				stringParam("source", "Source", source),
				stringParam("output", "Output", output),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(cfg.Seed, 10)},
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func stringParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: v}
}
