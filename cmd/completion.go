package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/yy2792/rqdliq/docs"
)

// Completion describes the rqd command line for shell completion.
func Completion() *complete.Command {
	decision := predict.Nothing
	fund := predict.Something
	topics, _ := docs.Names()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.json"),
			"log-level":      predict.Set{"debug", "info", "warn", "error"},
		},
		Sub: map[string]*complete.Command{
			"funds": {
				Flags: map[string]complete.Predictor{"json": predict.Nothing},
			},
			"project": {
				Flags: map[string]complete.Predictor{
					"d":      decision,
					"f":      fund,
					"settle": predict.Nothing,
					"json":   predict.Nothing,
				},
			},
			"liquidity": {
				Flags: map[string]complete.Predictor{
					"d":    decision,
					"f":    fund,
					"json": predict.Nothing,
				},
			},
			"curve": {
				Flags: map[string]complete.Predictor{
					"d":  decision,
					"by": predict.Set{"fund", "tranche"},
				},
			},
			"ladder": {
				Flags: map[string]complete.Predictor{
					"d":    decision,
					"h":    predict.Something,
					"json": predict.Nothing,
				},
			},
			"topic": {
				Args: predict.Set(append(topics, "*")),
			},
		},
	}
}
