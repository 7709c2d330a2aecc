package cmd

import (
	"flag"
	"io"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/docs"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion. Calling
// Complete on it answers a completion request when the shell made one, and
// returns otherwise.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	for _, c := range Commands() {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		f.SetOutput(io.Discard)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagPredictors(f),
			Args:  argsPredictor(c),
		}
	}
	// subcommands.Commander built-ins.
	root.Sub["help"] = &complete.Command{Args: predict.Set(commandNames())}
	root.Sub["flags"] = &complete.Command{Args: predict.Set(commandNames())}
	root.Sub["commands"] = &complete.Command{}
	return root
}

func commandNames() []string {
	var names []string
	for _, c := range Commands() {
		names = append(names, c.Name())
	}
	return names
}

// flagPredictors predicts flag values from their name.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	kinds := make([]string, len(cashbook.Kinds))
	for i, k := range cashbook.Kinds {
		kinds[i] = k.String()
	}

	predictors := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "ledger-file":
			predictors[fl.Name] = predict.Files("*.txt")
		case "config":
			predictors[fl.Name] = predict.Files("*.yaml")
		case "currency":
			predictors[fl.Name] = predict.Set(renderer.Currencies)
		case "k":
			predictors[fl.Name] = predict.Set(kinds)
		default:
			if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				predictors[fl.Name] = predict.Nothing
			} else {
				predictors[fl.Name] = predict.Something
			}
		}
	})
	return predictors
}

func argsPredictor(c subcommands.Command) complete.Predictor {
	if c.Name() != "topic" {
		return predict.Nothing
	}
	topics, err := docs.List()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(append(topics, docs.Readme, docs.All))
}
