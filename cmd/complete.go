package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the invt command line for shell completion.
func Completion() *complete.Command {
	files := predict.Files("*")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":      predict.Files("*.yaml"),
			"prices":      predict.Files("*.json"),
			"prices-path": predict.Something,
			"raw":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"replay": {
				Args: files,
				Flags: map[string]complete.Predictor{
					"strict":    predict.Nothing,
					"json":      predict.Nothing,
					"exact":     predict.Nothing,
					"mode":      predict.Set{"total", "profit-loss"},
					"no-ledger": predict.Nothing,
					"overlay":   predict.Nothing,
				},
			},
			"value": {
				Args: predict.Files("*.json"),
				Flags: map[string]complete.Predictor{
					"ignore":     predict.Something,
					"use-config": predict.Nothing,
				},
			},
			"abbrev": {
				Flags: map[string]complete.Predictor{
					"exact":   predict.Nothing,
					"compact": predict.Nothing,
				},
			},
			"config": {
				Flags: map[string]complete.Predictor{
					"default": predict.Nothing,
				},
			},
			"fmt": {
				Args: files,
				Flags: map[string]complete.Predictor{
					"o":      files,
					"strict": predict.Nothing,
				},
			},
			"topic": {
				Args: predict.Set{"readme", "ledger", "lifecycle", "config", "ticklog", "*"},
			},
		},
	}
}
